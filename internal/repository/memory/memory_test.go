package memory

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/homestead/internal/domain/models"
	"github.com/mamadbah2/homestead/internal/repository"
)

func TestStateRoundTripIsolatesCopies(t *testing.T) {
	ctx := context.Background()
	repo := New()

	_, err := repo.LoadState(ctx)
	assert.True(t, errors.Is(err, repository.ErrStateNotFound))

	state := models.HomesteadState{
		Crops: []models.Crop{{ID: "kale", Name: "Kale", Beds: 1}},
		Beds:  []models.GardenBed{models.NewGardenBed("b1")},
	}
	require.NoError(t, repo.SaveState(ctx, state))

	state.Crops[0].Name = "mutated"
	state.Beds[0].Grid[0] = "kale"

	loaded, err := repo.LoadState(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Kale", loaded.Crops[0].Name)
	assert.Equal(t, "", loaded.Beds[0].Grid[0])
}

func TestStateRoundTripKeepsEmptyLists(t *testing.T) {
	ctx := context.Background()
	repo := New()

	state := models.HomesteadState{
		Crops: []models.Crop{},
		Beds:  []models.GardenBed{{ID: "b1"}},
	}
	require.NoError(t, repo.SaveState(ctx, state))

	loaded, err := repo.LoadState(ctx)
	require.NoError(t, err)
	assert.NotNil(t, loaded.Crops)
	assert.NotNil(t, loaded.Livestock)
	assert.NotNil(t, loaded.Labor)
	assert.NotNil(t, loaded.Meals)
	assert.NotNil(t, loaded.Pantry)
	assert.NotNil(t, loaded.Beds[0].Crops)
	assert.NotNil(t, loaded.Beds[0].Grid)

	raw, err := json.Marshal(loaded)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "null")
}

func TestSnapshotsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := New()
	base := time.Date(2026, time.October, 2, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.SaveSnapshot(ctx, models.PlanSnapshot{Date: base.AddDate(0, 0, 7*i), DaysOfFood: i}))
	}

	got, err := repo.ListSnapshots(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].DaysOfFood)
	assert.Equal(t, 1, got[1].DaysOfFood)
}
