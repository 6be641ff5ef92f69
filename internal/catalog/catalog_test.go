package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/homestead/internal/domain/models"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Len(t, c.Crops(), 17)
	assert.Len(t, c.Recipes(), 16)
	assert.Equal(t, []string{"herb", "vegetable"}, c.Categories())
	assert.Len(t, c.CropsBySeason("summer"), 6)
	assert.Empty(t, c.CropsBySeason("monsoon"))
}

func TestCropByID(t *testing.T) {
	c := MustLoad()

	tom, ok := c.CropByID("tomatoes")
	require.True(t, ok)
	assert.Equal(t, "Tomatoes", tom.Name)
	assert.Equal(t, 40.0, tom.YieldAverage)
	assert.Equal(t, 10.0, tom.Preservation.Ratio.InputAmount)
	assert.Equal(t, "May 1", tom.PlantingWindow.Start)

	_, ok = c.CropByID("durian")
	assert.False(t, ok)
}

func TestToCrop(t *testing.T) {
	c := MustLoad()
	data, ok := c.CropByID("tomatoes")
	require.True(t, ok)

	crop := data.ToCrop(2)
	assert.Equal(t, "tomatoes", crop.ID)
	assert.Equal(t, 2.0, crop.Beds)
	assert.Equal(t, 40.0, crop.YieldPerBed)
	assert.Equal(t, 2.5, crop.PricePerUnit)
	require.NotNil(t, crop.DaysToHarvest)
	assert.Equal(t, 70, *crop.DaysToHarvest)
	require.NotNil(t, crop.WaterNeedsPerWeek)
	assert.Equal(t, 8.0, *crop.WaterNeedsPerWeek)
	assert.Equal(t, models.StorageCanned, crop.StorageMethod)
}

func TestRecipesByCrop(t *testing.T) {
	c := MustLoad()

	recipes := c.RecipesByCrop("tomatoes")
	require.Len(t, recipes, 3)
	for _, r := range recipes {
		assert.Equal(t, "tomatoes", r.CropID)
		assert.Greater(t, r.InputAmount, 0.0)
	}
	assert.Empty(t, c.RecipesByCrop("lettuce"))
}

func TestRecipeByID(t *testing.T) {
	c := MustLoad()

	r, ok := c.RecipeByID("tomato-sauce")
	require.True(t, ok)
	assert.Equal(t, "tomatoes", r.CropID)
	assert.Equal(t, 10.0, r.Ratio().InputAmount)

	_, ok = c.RecipeByID("kimchi")
	assert.False(t, ok)
}
