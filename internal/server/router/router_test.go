package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/homestead/internal/catalog"
	"github.com/mamadbah2/homestead/internal/domain/models"
	"github.com/mamadbah2/homestead/internal/repository/memory"
	"github.com/mamadbah2/homestead/internal/server/handlers"
	"github.com/mamadbah2/homestead/internal/service/planner"
	"github.com/mamadbah2/homestead/internal/service/reporting"
	"github.com/mamadbah2/homestead/internal/service/yield"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testAPI struct {
	t      *testing.T
	engine *gin.Engine
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)

	repo := memory.New()
	calc := yield.New(yield.Params{})
	plan := planner.NewService(repo, calc, cat, 1, nil)
	reports := reporting.NewService(plan, repo, nil, "", nil)

	engine := New(Handlers{
		Planner:    handlers.NewPlannerHandler(plan, nil),
		Calculator: handlers.NewCalculatorHandler(calc, cat, 1, nil),
		Catalog:    handlers.NewCatalogHandler(cat),
		Reports:    handlers.NewReportHandler(reports, nil),
	}, nil)
	return &testAPI{t: t, engine: engine}
}

func (a *testAPI) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealthz(t *testing.T) {
	api := newTestAPI(t)
	w := api.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestStateAndSettings(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/v1/state", nil)
	require.Equal(t, http.StatusOK, w.Code)
	st := decode[models.HomesteadState](t, w)
	assert.Len(t, st.Beds, 4)

	w = api.do(http.MethodPatch, "/api/v1/settings", map[string]any{"numberOfBeds": 6, "pestPressure": "high"})
	require.Equal(t, http.StatusOK, w.Code)
	settings := decode[models.Settings](t, w)
	assert.Equal(t, 6, settings.NumberOfBeds)
	assert.Equal(t, models.PressureHigh, settings.PestPressure)

	w = api.do(http.MethodGet, "/api/v1/state", nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, key := range []string{`"crops":[]`, `"labor":[]`, `"meals":[]`, `"pantry":[]`} {
		assert.Contains(t, w.Body.String(), key)
	}

	w = api.do(http.MethodPatch, "/api/v1/settings", map[string]any{"pestPressure": "apocalyptic"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodPut, "/api/v1/beds/sync", map[string]any{"count": 2})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.GardenBed](t, w), 2)
}

func TestCropRoutes(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/v1/crops", map[string]any{"catalogId": "tomatoes", "beds": 2})
	require.Equal(t, http.StatusCreated, w.Code)
	crop := decode[models.Crop](t, w)
	assert.Equal(t, "Tomatoes", crop.Name)

	w = api.do(http.MethodPost, "/api/v1/crops", map[string]any{"catalogId": "durian"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodPost, "/api/v1/crops", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodPatch, "/api/v1/crops/"+crop.ID, map[string]any{"beds": 3})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3.0, decode[models.Crop](t, w).Beds)

	w = api.do(http.MethodDelete, "/api/v1/crops/"+crop.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = api.do(http.MethodDelete, "/api/v1/crops/"+crop.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBedCellRoutes(t *testing.T) {
	api := newTestAPI(t)

	crop := decode[models.Crop](t, api.do(http.MethodPost, "/api/v1/crops", map[string]any{"catalogId": "kale", "beds": 1}))
	st := decode[models.HomesteadState](t, api.do(http.MethodGet, "/api/v1/state", nil))
	bedID := st.Beds[0].ID

	w := api.do(http.MethodPut, "/api/v1/beds/"+bedID+"/cells/3", map[string]any{"cropId": crop.ID})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, crop.ID, decode[models.GardenBed](t, w).Grid[3])

	w = api.do(http.MethodGet, "/api/v1/beds/distribution", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]int{crop.ID: 1}, decode[map[string]int](t, w))

	w = api.do(http.MethodPut, "/api/v1/beds/"+bedID+"/cells/32", map[string]any{"cropId": crop.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodPut, "/api/v1/beds/"+bedID+"/cells/abc", map[string]any{"cropId": crop.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodPut, "/api/v1/beds/missing/cells/0", map[string]any{"cropId": crop.ID})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodDelete, "/api/v1/beds/"+bedID+"/cells/3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", decode[models.GardenBed](t, w).Grid[3])
}

func TestJournalRoutes(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/v1/labor", map[string]any{"category": "weeding", "task": "Bed 1", "hours": 2, "date": "2026-05-01"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.do(http.MethodPost, "/api/v1/labor", map[string]any{"category": "weeding", "task": "Bed 1", "hours": 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodGet, "/api/v1/labor", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2.0, decode[planner.LaborLog](t, w).TotalHours)

	w = api.do(http.MethodPost, "/api/v1/meals", map[string]any{
		"name":        "Omelette",
		"ingredients": []map[string]any{{"livestockId": models.LivestockChickens, "amount": 3}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	meal := decode[models.Meal](t, w)
	assert.InDelta(t, 0.75, meal.EstimatedCost, 1e-9)
	assert.InDelta(t, 210, meal.EstimatedCalories, 1e-9)

	w = api.do(http.MethodPost, "/api/v1/pantry/initialize", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decode[[]models.PantryItem](t, w)
	require.Len(t, items, 2)

	w = api.do(http.MethodPost, "/api/v1/pantry/"+items[0].ID+"/consume", map[string]any{"amount": 10000})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, decode[models.PantryItem](t, w).Quantity)

	w = api.do(http.MethodPost, "/api/v1/pantry/"+items[0].ID+"/consume", map[string]any{"amount": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboardRoutes(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/v1/dashboard?eggReduction=0.5&household=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	dash := decode[planner.Dashboard](t, w)
	assert.Equal(t, 2, dash.HouseholdSize)
	assert.InDelta(t, 780, dash.Livestock.Items[0].AnnualProduction, 1e-9)

	w = api.do(http.MethodGet, "/api/v1/dashboard?eggReduction=2", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodGet, "/api/v1/calendar?year=2027", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodGet, "/api/v1/calendar?year=soon", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculateRoutes(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/v1/calculate/yield", map[string]any{
		"crop":     map[string]any{"name": "Tomatoes", "beds": 2, "yieldPerBed": 50},
		"settings": map[string]any{"experienceLevel": "intermediate", "pestPressure": "moderate"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, 70.38, decode[yield.Estimate](t, w).AdjustedYield, 1e-9)

	w = api.do(http.MethodPost, "/api/v1/calculate/food-security", map[string]any{"totalCalories": 912500, "householdSize": 1})
	require.Equal(t, http.StatusOK, w.Code)
	fs := decode[yield.FoodSecurity](t, w)
	assert.Equal(t, 365, fs.DaysOfFood)
	assert.Equal(t, 100, fs.Score)

	w = api.do(http.MethodPost, "/api/v1/calculate/preservation", map[string]any{"yield": 20, "ratio": map[string]any{"inputAmount": 0, "outputAmount": 7}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = api.do(http.MethodPost, "/api/v1/calculate/preservation", map[string]any{"yield": 25, "recipeId": "tomato-sauce"})
	require.Equal(t, http.StatusOK, w.Code)
	var plan struct {
		OutputQuantity float64          `json:"outputQuantity"`
		BatchesNeeded  int              `json:"batchesNeeded"`
		Supplies       yield.SupplyCost `json:"supplies"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.InDelta(t, 17.5, plan.OutputQuantity, 1e-9)
	assert.Equal(t, 3, plan.BatchesNeeded)
	assert.InDelta(t, 9.8, plan.Supplies.OneTimeCost, 1e-9)

	w = api.do(http.MethodPost, "/api/v1/calculate/preservation", map[string]any{"yield": 25, "recipeId": "kimchi"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodPost, "/api/v1/calculate/preservation", map[string]any{"yield": 25})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodPost, "/api/v1/calculate/water", map[string]any{"crops": []map[string]any{{"name": "Kale", "beds": 2}}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10.0, decode[yield.WaterSummary](t, w).WeeklyGallons)
}

func TestCalculateAcceptsUnnamedCrops(t *testing.T) {
	api := newTestAPI(t)
	crop := map[string]any{"beds": 1, "yieldPerBed": 40, "pricePerUnit": 2.5, "caloriesPerUnit": 82}
	settings := map[string]any{"experienceLevel": "intermediate", "spoilageRate": 0.1, "pestPressure": "moderate"}

	w := api.do(http.MethodPost, "/api/v1/calculate/yield", map[string]any{"crop": crop, "settings": settings})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.InDelta(t, 28.152, decode[yield.Estimate](t, w).AdjustedYield, 1e-9)

	w = api.do(http.MethodPost, "/api/v1/calculate/garden", map[string]any{"crops": []any{crop}, "settings": settings})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.InDelta(t, 70.38, decode[yield.GardenSummary](t, w).TotalValue, 1e-9)

	w = api.do(http.MethodPost, "/api/v1/calculate/roi", map[string]any{"crops": []any{crop}, "settings": settings})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.do(http.MethodPost, "/api/v1/crops", map[string]any{"crop": crop})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculateRejectsSpoilageOutsideUnitInterval(t *testing.T) {
	api := newTestAPI(t)
	crop := map[string]any{"beds": 1, "yieldPerBed": 40}

	for _, rate := range []float64{-0.2, 1.5} {
		w := api.do(http.MethodPost, "/api/v1/calculate/yield", map[string]any{
			"crop":     crop,
			"settings": map[string]any{"spoilageRate": rate},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, "rate %v", rate)
	}

	w := api.do(http.MethodPost, "/api/v1/calculate/yield", map[string]any{
		"crop":     crop,
		"settings": map[string]any{"spoilageRate": 0},
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCatalogRoutes(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/v1/catalog/crops?season=fall", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.CropData](t, w), 5)

	w = api.do(http.MethodGet, "/api/v1/catalog/crops/tomatoes", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodGet, "/api/v1/catalog/crops/durian", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodGet, "/api/v1/catalog/recipes?crop=tomatoes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.PreservationRecipe](t, w), 3)
}

func TestReportRoutes(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/v1/reports/weekly", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, decode[reporting.Report](t, w).Text, "Homestead summary")

	w = api.do(http.MethodGet, "/api/v1/reports", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.PlanSnapshot](t, w), 1)

	w = api.do(http.MethodGet, "/api/v1/reports?limit=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
