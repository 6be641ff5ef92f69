// Package planner owns the homestead document: it applies edits, keeps the
// bed layout consistent, persists every change and feeds the calculator.
package planner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid"
	"go.uber.org/zap"

	"github.com/mamadbah2/homestead/internal/catalog"
	"github.com/mamadbah2/homestead/internal/domain/models"
	"github.com/mamadbah2/homestead/internal/repository"
	"github.com/mamadbah2/homestead/internal/service/yield"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz_-"

var (
	// ErrNotFound indicates the referenced crop, livestock, bed or entry does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates a request the planner cannot apply.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCell indicates a bed grid index outside the grid.
	ErrInvalidCell = errors.New("invalid bed cell")
)

// Service implements the homestead planner.
type Service struct {
	repo          repository.StateRepository
	calc          *yield.Calculator
	catalog       *catalog.Catalog
	householdSize int
	logger        *zap.Logger

	mu    sync.Mutex
	newID func() (string, error)
	now   func() time.Time
}

// NewService wires a planner. householdSize < 1 counts as one person.
func NewService(repo repository.StateRepository, calc *yield.Calculator, cat *catalog.Catalog, householdSize int, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if householdSize < 1 {
		householdSize = 1
	}
	return &Service{
		repo:          repo,
		calc:          calc,
		catalog:       cat,
		householdSize: householdSize,
		logger:        logger,
		newID:         func() (string, error) { return gonanoid.Generate(idAlphabet, 21) },
		now:           time.Now,
	}
}

// Calculator exposes the calculator the planner evaluates with.
func (s *Service) Calculator() *yield.Calculator {
	return s.calc
}

// Catalog exposes the crop and recipe catalog.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// HouseholdSize is the default household size used for food security.
func (s *Service) HouseholdSize() int {
	return s.householdSize
}

// State returns the current document, seeding defaults on first use.
func (s *Service) State(ctx context.Context) (models.HomesteadState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *Service) load(ctx context.Context) (models.HomesteadState, error) {
	state, err := s.repo.LoadState(ctx)
	if errors.Is(err, repository.ErrStateNotFound) {
		s.logger.Info("no saved homestead, seeding defaults")
		seeded, err := s.defaultState()
		if err != nil {
			return models.HomesteadState{}, err
		}
		if err := s.repo.SaveState(ctx, seeded); err != nil {
			return models.HomesteadState{}, fmt.Errorf("save seeded state: %w", err)
		}
		return seeded, nil
	}
	if err != nil {
		return models.HomesteadState{}, fmt.Errorf("load state: %w", err)
	}
	return state, nil
}

// mutate applies fn to a private copy of the state and persists it. The
// stored document only changes when fn and the save both succeed.
func (s *Service) mutate(ctx context.Context, op string, fn func(*models.HomesteadState) error) (models.HomesteadState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx)
	if err != nil {
		return models.HomesteadState{}, err
	}

	next := current.Clone()
	if err := fn(&next); err != nil {
		return models.HomesteadState{}, err
	}
	next.UpdatedAt = s.now().UTC()

	if err := s.repo.SaveState(ctx, next); err != nil {
		return models.HomesteadState{}, fmt.Errorf("save state after %s: %w", op, err)
	}

	s.logger.Debug("homestead updated", zap.String("op", op))
	return next, nil
}

func (s *Service) id() (string, error) {
	id, err := s.newID()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return id, nil
}

// UpdateSettings merges the patch into the settings. A new bed count resizes
// the bed list.
func (s *Service) UpdateSettings(ctx context.Context, patch models.SettingsPatch) (models.HomesteadState, error) {
	return s.mutate(ctx, "update settings", func(st *models.HomesteadState) error {
		st.Settings = patch.Apply(st.Settings)
		if patch.NumberOfBeds != nil {
			return s.syncBeds(st, *patch.NumberOfBeds)
		}
		return nil
	})
}

// DefaultSettings are the settings of a fresh homestead.
func DefaultSettings() models.Settings {
	return models.Settings{
		NumberOfBeds:            4,
		BedLengthFeet:           8,
		BedWidthFeet:            4,
		MonthlyGroceryBudget:    400,
		EggPricePerDozen:        4,
		HoneyPricePerLb:         8,
		FeedCostPerChickenMonth: 3,
		HiveMaintenanceAnnual:   50,
		ClimateZone:             "7",
		ExperienceLevel:         models.ExperienceIntermediate,
		SeedBudget:              models.Float(200),
		SpoilageRate:            models.Float(0.1),
		WeatherImpact:           models.PressureModerate,
		PestPressure:            models.PressureModerate,
	}
}

// DefaultLivestock is the starter flock and hive.
func DefaultLivestock() []models.LivestockItem {
	return []models.LivestockItem{
		{
			ID:                      models.LivestockChickens,
			Name:                    "Chickens",
			Count:                   6,
			AnnualProductionPerUnit: 260,
			PricePerUnit:            0.25,
			AnnualCostPerUnit:       36,
			CaloriesPerUnit:         70,
			Unit:                    "egg",
		},
		{
			ID:                      models.LivestockBees,
			Name:                    "Honey Bees",
			Count:                   1,
			AnnualProductionPerUnit: 60,
			PricePerUnit:            8,
			AnnualCostPerUnit:       50,
			CaloriesPerUnit:         1392,
			Unit:                    "lb honey",
		},
	}
}

func (s *Service) defaultState() (models.HomesteadState, error) {
	st := models.HomesteadState{
		Settings:  DefaultSettings(),
		Crops:     []models.Crop{},
		Livestock: DefaultLivestock(),
		Beds:      []models.GardenBed{},
		Labor:     []models.LaborEntry{},
		Meals:     []models.Meal{},
		Pantry:    []models.PantryItem{},
		UpdatedAt: s.now().UTC(),
	}
	if err := s.syncBeds(&st, st.Settings.NumberOfBeds); err != nil {
		return models.HomesteadState{}, err
	}
	return st, nil
}
