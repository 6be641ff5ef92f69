package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mamadbah2/homestead/internal/domain/models"
	"github.com/mamadbah2/homestead/internal/service/yield"
)

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the built-in crop database and preservation recipes",
	}
	cmd.AddCommand(newCatalogCropsCmd(a), newCatalogRecipesCmd(a))
	return cmd
}

func newCatalogCropsCmd(a *app) *cobra.Command {
	var season string

	cmd := &cobra.Command{
		Use:   "crops",
		Short: "List catalog crops",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			crops := a.catalog.Crops()
			if season != "" {
				crops = a.catalog.CropsBySeason(strings.ToLower(season))
				if len(crops) == 0 {
					return fmt.Errorf("no crops for season %q", season)
				}
			}

			fmt.Fprintf(a.out, "%-14s %-16s %-11s %-9s %14s %8s %7s\n", "ID", "NAME", "SEASON", "PLANT", "YIELD/BED", "PRICE", "DAYS")
			for _, c := range crops {
				fmt.Fprintf(a.out, "%-14s %-16s %-11s %-9s %6.0f-%-3.0f%-4s $%7.2f %7d\n",
					c.ID, c.Name, c.Season, c.PlantingWindow.Start, c.YieldLow, c.YieldHigh, c.Unit, c.PricePerUnit, c.HarvestWindow.DaysToHarvest)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&season, "season", "s", "", "only crops for this season (spring, summer, fall, year-round)")
	return cmd
}

func newCatalogRecipesCmd(a *app) *cobra.Command {
	var cropID string
	var yieldAmount float64

	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "List preservation recipes",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			recipes := a.catalog.Recipes()
			if cropID != "" {
				if _, ok := a.catalog.CropByID(cropID); !ok {
					return fmt.Errorf("unknown crop %q", cropID)
				}
				recipes = a.catalog.RecipesByCrop(cropID)
			}

			for _, r := range recipes {
				printRecipe(a, r, yieldAmount)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&cropID, "crop", "c", "", "only recipes for this catalog crop id")
	cmd.Flags().Float64Var(&yieldAmount, "yield", 0, "harvest to convert through each recipe")
	return cmd
}

func printRecipe(a *app, r models.PreservationRecipe, yieldAmount float64) {
	supplies := yield.SupplyCosts(r)
	fmt.Fprintf(a.out, "%s (%s, %s)\n", r.Name, r.Method, r.Difficulty)
	fmt.Fprintf(a.out, "  %g %s -> %g %s, supplies $%.2f first batch, $%.2f after\n",
		r.InputAmount, r.InputUnit, r.OutputAmount, r.OutputUnit, supplies.TotalFirstTime, supplies.RecurringCost)

	if yieldAmount <= 0 {
		return
	}
	plan, err := yield.PreservationNeeds(yieldAmount, r.Ratio())
	if err != nil {
		fmt.Fprintf(a.out, "  cannot convert: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "  %g %s -> %.1f %s in %d batches\n", yieldAmount, r.InputUnit, plan.OutputQuantity, r.OutputUnit, plan.BatchesNeeded)
}
