// Package catalog serves the built-in crop database and preservation recipes.
package catalog

import (
	"embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/mamadbah2/homestead/internal/domain/models"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Catalog is an immutable, indexed view of the embedded data.
type Catalog struct {
	crops    []models.CropData
	recipes  []models.PreservationRecipe
	byID     map[string]int
	byRecipe map[string]int
}

type cropFile struct {
	Crops []models.CropData `yaml:"crops"`
}

type recipeFile struct {
	Recipes []models.PreservationRecipe `yaml:"recipes"`
}

// Load parses the embedded YAML files.
func Load() (*Catalog, error) {
	var cf cropFile
	if err := decode("data/crops.yaml", &cf); err != nil {
		return nil, err
	}

	var rf recipeFile
	if err := decode("data/recipes.yaml", &rf); err != nil {
		return nil, err
	}

	c := &Catalog{
		crops:    cf.Crops,
		recipes:  rf.Recipes,
		byID:     make(map[string]int, len(cf.Crops)),
		byRecipe: make(map[string]int, len(rf.Recipes)),
	}
	for i, crop := range cf.Crops {
		if _, dup := c.byID[crop.ID]; dup {
			return nil, fmt.Errorf("duplicate crop id %q in catalog", crop.ID)
		}
		c.byID[crop.ID] = i
	}
	for i, r := range rf.Recipes {
		if _, dup := c.byRecipe[r.ID]; dup {
			return nil, fmt.Errorf("duplicate recipe id %q in catalog", r.ID)
		}
		c.byRecipe[r.ID] = i
	}

	return c, nil
}

// MustLoad is Load for program start-up.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

func decode(path string, out any) error {
	raw, err := dataFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Crops lists every catalog crop in catalog order.
func (c *Catalog) Crops() []models.CropData {
	return append([]models.CropData(nil), c.crops...)
}

// CropByID finds a crop.
func (c *Catalog) CropByID(id string) (models.CropData, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.CropData{}, false
	}
	return c.crops[i], true
}

// CropsBySeason filters crops by season.
func (c *Catalog) CropsBySeason(season string) []models.CropData {
	var out []models.CropData
	for _, crop := range c.crops {
		if crop.Season == season {
			out = append(out, crop)
		}
	}
	return out
}

// Categories returns the distinct crop categories, sorted.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	for _, crop := range c.crops {
		seen[crop.Category] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for cat := range seen {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

// Recipes lists every preservation recipe.
func (c *Catalog) Recipes() []models.PreservationRecipe {
	return append([]models.PreservationRecipe(nil), c.recipes...)
}

// RecipeByID finds a recipe.
func (c *Catalog) RecipeByID(id string) (models.PreservationRecipe, bool) {
	i, ok := c.byRecipe[id]
	if !ok {
		return models.PreservationRecipe{}, false
	}
	return c.recipes[i], true
}

// RecipesByCrop lists the recipes that use the given crop.
func (c *Catalog) RecipesByCrop(cropID string) []models.PreservationRecipe {
	var out []models.PreservationRecipe
	for _, r := range c.recipes {
		if r.CropID == cropID {
			out = append(out, r)
		}
	}
	return out
}
