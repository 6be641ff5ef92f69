package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mamadbah2/homestead/internal/catalog"
	"github.com/mamadbah2/homestead/internal/domain/models"
	"github.com/mamadbah2/homestead/internal/service/planner"
	"github.com/mamadbah2/homestead/internal/service/yield"
)

// planFile is the YAML plan read by calc. Omitted settings and livestock
// take the fresh-homestead defaults.
type planFile struct {
	HouseholdSize int                    `yaml:"householdSize"`
	Params        yield.Params           `yaml:"params"`
	Settings      models.Settings        `yaml:"settings"`
	Crops         []planCrop             `yaml:"crops"`
	Livestock     []models.LivestockItem `yaml:"livestock"`
}

// planCrop is either a full crop record or a catalog reference with beds.
type planCrop struct {
	CatalogID   string `yaml:"catalogId"`
	models.Crop `yaml:",inline"`
}

type calcOptions struct {
	planPath  string
	household int
	weather   bool
	output    string
	scenario  yield.Scenario
}

// calcReport is everything calc prints.
type calcReport struct {
	HouseholdSize int                    `json:"householdSize"`
	Crops         []cropLine             `json:"crops"`
	Garden        yield.GardenSummary    `json:"garden"`
	Livestock     yield.LivestockSummary `json:"livestock"`
	Water         yield.WaterSummary     `json:"water"`
	Labor         yield.LaborSummary     `json:"labor"`
	ROI           yield.ROI              `json:"roi"`
	FoodSecurity  yield.FoodSecurity     `json:"foodSecurity"`
	Outlook       *yield.Outlook         `json:"outlook,omitempty"`
}

type cropLine struct {
	Name     string         `json:"name"`
	Unit     string         `json:"unit"`
	Estimate yield.Estimate `json:"estimate"`
	Value    float64        `json:"value"`
	Calories float64        `json:"calories"`
}

func newCalcCmd(a *app) *cobra.Command {
	opts := &calcOptions{}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Evaluate a YAML homestead plan",
		Long: `Evaluate a YAML homestead plan and print yields, value, livestock
economics, water, labor, ROI and food security.

Crops are either full records or catalog references:

  crops:
    - catalogId: tomatoes
      beds: 2
    - name: Okra
      beds: 1
      yieldPerBed: 12
      unit: lbs
      pricePerUnit: 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalc(a, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.planPath, "plan", "p", "", "path to the YAML plan")
	f.IntVar(&opts.household, "household", 0, "household size (overrides the plan)")
	f.BoolVar(&opts.weather, "weather", false, "include the weather min/max band per crop")
	f.StringVarP(&opts.output, "output", "o", "text", "output format: text, yaml or json")
	f.Float64Var(&opts.scenario.BedMultiplier, "bed-multiplier", 0, "what-if: scale planted beds")
	f.Float64Var(&opts.scenario.DroughtPenalty, "drought", 0, "what-if: fraction of garden yield lost to drought")
	f.Float64Var(&opts.scenario.EggReduction, "egg-reduction", 0, "what-if: fraction of egg production lost")
	f.Float64Var(&opts.scenario.FeedIncrease, "feed-increase", 0, "what-if: fractional rise in chicken feed cost")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}

func runCalc(a *app, opts *calcOptions) error {
	switch opts.output {
	case "text", "yaml", "json":
	default:
		return fmt.Errorf("unknown output format %q", opts.output)
	}

	plan, err := loadPlan(opts.planPath, a.catalog)
	if err != nil {
		return err
	}
	a.logger.Debug("plan loaded", zap.String("path", opts.planPath), zap.Int("crops", len(plan.crops)), zap.Int("livestock", len(plan.livestock)))

	household := plan.householdSize
	if opts.household > 0 {
		household = opts.household
	}

	report := evaluate(yield.New(plan.params), plan, household, opts)

	switch opts.output {
	case "json":
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		return writeYAML(a.out, report)
	default:
		printReport(a.out, report)
		return nil
	}
}

type resolvedPlan struct {
	householdSize int
	params        yield.Params
	settings      models.Settings
	crops         []models.Crop
	livestock     []models.LivestockItem
}

func loadPlan(path string, cat *catalog.Catalog) (resolvedPlan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return resolvedPlan{}, fmt.Errorf("read plan: %w", err)
	}

	pf := planFile{
		HouseholdSize: 1,
		Settings:      planner.DefaultSettings(),
		Livestock:     planner.DefaultLivestock(),
	}
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return resolvedPlan{}, fmt.Errorf("parse plan %s: %w", path, err)
	}

	crops := make([]models.Crop, 0, len(pf.Crops))
	for i, pc := range pf.Crops {
		crop := pc.Crop
		if pc.CatalogID != "" {
			data, ok := cat.CropByID(pc.CatalogID)
			if !ok {
				return resolvedPlan{}, fmt.Errorf("crop %d: unknown catalog id %q", i+1, pc.CatalogID)
			}
			crop = data.ToCrop(pc.Beds)
		}
		if strings.TrimSpace(crop.Name) == "" {
			return resolvedPlan{}, fmt.Errorf("crop %d: name or catalogId is required", i+1)
		}
		if crop.Beds < 0 || crop.YieldPerBed < 0 {
			return resolvedPlan{}, fmt.Errorf("crop %q: beds and yieldPerBed must not be negative", crop.Name)
		}
		crops = append(crops, crop)
	}

	if pf.HouseholdSize < 1 {
		return resolvedPlan{}, errors.New("householdSize must be at least 1")
	}

	return resolvedPlan{
		householdSize: pf.HouseholdSize,
		params:        pf.Params,
		settings:      pf.Settings,
		crops:         crops,
		livestock:     pf.Livestock,
	}, nil
}

func evaluate(calc *yield.Calculator, plan resolvedPlan, household int, opts *calcOptions) calcReport {
	garden := calc.GardenValue(plan.crops, plan.settings)
	herd := calc.LivestockMetrics(plan.livestock, nil)

	report := calcReport{
		HouseholdSize: household,
		Crops:         make([]cropLine, 0, len(plan.crops)),
		Garden:        garden,
		Livestock:     herd,
		Water:         calc.WaterCosts(plan.crops, 0),
		Labor:         calc.LaborRequirements(plan.crops, plan.settings),
		ROI:           calc.GardenROI(plan.crops, plan.settings),
		FoodSecurity:  calc.FoodSecurity(garden.TotalCalories+herd.TotalCalories, household),
	}

	for i, crop := range plan.crops {
		report.Crops = append(report.Crops, cropLine{
			Name:     crop.Name,
			Unit:     crop.Unit,
			Estimate: calc.AdjustedYield(crop, plan.settings, opts.weather),
			Value:    garden.Breakdown[i].Value,
			Calories: garden.Breakdown[i].Calories,
		})
	}

	if opts.scenario != (yield.Scenario{}) {
		outlook := calc.Outlook(plan.crops, plan.livestock, plan.settings, opts.scenario, household)
		report.Outlook = &outlook
	}
	return report
}

// writeYAML renders v with its JSON field names.
func writeYAML(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return err
	}
	return enc.Close()
}

func printReport(w io.Writer, r calcReport) {
	fmt.Fprintf(w, "Garden\n")
	for _, c := range r.Crops {
		fmt.Fprintf(w, "  %-18s %9.1f %-8s $%9.2f %10.0f kcal", c.Name, c.Estimate.AdjustedYield, c.Unit, c.Value, c.Calories)
		if c.Estimate.Modifiers.Weather != nil {
			fmt.Fprintf(w, "  (%.1f-%.1f)", c.Estimate.MinYield, c.Estimate.MaxYield)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "  %-18s %9.1f %-8s $%9.2f %10.0f kcal\n\n", "total", r.Garden.TotalYield, "", r.Garden.TotalValue, r.Garden.TotalCalories)

	fmt.Fprintf(w, "Livestock\n")
	for _, l := range r.Livestock.Items {
		fmt.Fprintf(w, "  %-18s %9.0f units  value $%.2f  cost $%.2f  net $%.2f\n", l.Name, l.AnnualProduction, l.Value, l.Cost, l.Net)
	}
	fmt.Fprintf(w, "  net $%.2f, %.0f kcal\n\n", r.Livestock.NetValue, r.Livestock.TotalCalories)

	fmt.Fprintf(w, "Water   %.1f gal/week, $%.2f/week, $%.2f/season\n", r.Water.WeeklyGallons, r.Water.WeeklyCost, r.Water.AnnualCost)
	fmt.Fprintf(w, "Labor   %.1f h/season, %.1f h/week", r.Labor.TotalSeasonHours, r.Labor.WeeklyHoursAverage)
	if r.Labor.LaborCost != nil {
		fmt.Fprintf(w, ", worth $%.2f", *r.Labor.LaborCost)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "ROI     %.1f%% on $%.2f invested, net $%.2f/yr", r.ROI.ROIPercent, r.ROI.InitialInvestment, r.ROI.NetValue)
	if r.ROI.BreakEvenMonths != nil {
		fmt.Fprintf(w, ", break-even in %d months", *r.ROI.BreakEvenMonths)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Food    score %d/100, %d days for %d, %.1f%% of needs\n",
		r.FoodSecurity.Score, r.FoodSecurity.DaysOfFood, r.HouseholdSize, r.FoodSecurity.PercentOfNeeds)

	if r.Outlook != nil {
		fmt.Fprintf(w, "\nOutlook %.0f kcal, %.1f%% coverage, %d days, score %d/100\n",
			r.Outlook.TotalCalories, r.Outlook.CalorieCoverage*100, r.Outlook.DaysOfCalories, r.Outlook.FoodSecurity.Score)
	}
}
