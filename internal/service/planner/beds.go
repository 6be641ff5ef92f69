package planner

import (
	"context"
	"fmt"

	"github.com/mamadbah2/homestead/internal/domain/models"
)

// SyncBedCount grows or truncates the bed list to count beds.
func (s *Service) SyncBedCount(ctx context.Context, count int) (models.HomesteadState, error) {
	return s.mutate(ctx, "sync beds", func(st *models.HomesteadState) error {
		return s.syncBeds(st, count)
	})
}

func (s *Service) syncBeds(st *models.HomesteadState, count int) error {
	if count < 0 {
		return fmt.Errorf("bed count %d: %w", count, ErrInvalidInput)
	}

	for len(st.Beds) < count {
		id, err := s.id()
		if err != nil {
			return err
		}
		st.Beds = append(st.Beds, models.NewGardenBed(id))
	}
	st.Beds = st.Beds[:count]
	return nil
}

// AddBed appends an empty bed.
func (s *Service) AddBed(ctx context.Context) (models.GardenBed, error) {
	var bed models.GardenBed
	_, err := s.mutate(ctx, "add bed", func(st *models.HomesteadState) error {
		id, err := s.id()
		if err != nil {
			return err
		}
		bed = models.NewGardenBed(id)
		st.Beds = append(st.Beds, bed)
		return nil
	})
	return bed, err
}

// RemoveBed deletes a bed.
func (s *Service) RemoveBed(ctx context.Context, bedID string) error {
	_, err := s.mutate(ctx, "remove bed", func(st *models.HomesteadState) error {
		i := bedIndex(st.Beds, bedID)
		if i < 0 {
			return fmt.Errorf("bed %q: %w", bedID, ErrNotFound)
		}
		st.Beds = append(st.Beds[:i], st.Beds[i+1:]...)
		return nil
	})
	return err
}

// AssignCropToBed lists a crop as planted in a bed. Assigning twice is a no-op.
func (s *Service) AssignCropToBed(ctx context.Context, bedID, cropID string) (models.GardenBed, error) {
	return s.editBed(ctx, "assign crop to bed", bedID, cropID, func(bed *models.GardenBed) error {
		for _, c := range bed.Crops {
			if c == cropID {
				return nil
			}
		}
		bed.Crops = append(bed.Crops, cropID)
		return nil
	})
}

// RemoveCropFromBed drops a crop from a bed's crop list.
func (s *Service) RemoveCropFromBed(ctx context.Context, bedID, cropID string) (models.GardenBed, error) {
	return s.editBed(ctx, "remove crop from bed", bedID, "", func(bed *models.GardenBed) error {
		bed.Crops = without(bed.Crops, cropID)
		return nil
	})
}

// AssignCropToCell plants a crop in one grid cell.
func (s *Service) AssignCropToCell(ctx context.Context, bedID string, index int, cropID string) (models.GardenBed, error) {
	return s.editBed(ctx, "assign crop to cell", bedID, cropID, func(bed *models.GardenBed) error {
		if err := checkCell(bed, index); err != nil {
			return err
		}
		bed.Grid[index] = cropID
		return nil
	})
}

// ClearCell empties one grid cell.
func (s *Service) ClearCell(ctx context.Context, bedID string, index int) (models.GardenBed, error) {
	return s.editBed(ctx, "clear cell", bedID, "", func(bed *models.GardenBed) error {
		if err := checkCell(bed, index); err != nil {
			return err
		}
		bed.Grid[index] = ""
		return nil
	})
}

// CropDistribution counts planted grid cells per crop id across all beds.
func (s *Service) CropDistribution(ctx context.Context) (map[string]int, error) {
	st, err := s.State(ctx)
	if err != nil {
		return nil, err
	}
	return distribution(st.Beds), nil
}

func distribution(beds []models.GardenBed) map[string]int {
	dist := make(map[string]int)
	for _, bed := range beds {
		for _, cell := range bed.Grid {
			if cell != "" {
				dist[cell]++
			}
		}
	}
	return dist
}

// editBed runs fn on one bed. A non-empty cropID must name an existing crop.
func (s *Service) editBed(ctx context.Context, op, bedID, cropID string, fn func(*models.GardenBed) error) (models.GardenBed, error) {
	var out models.GardenBed
	_, err := s.mutate(ctx, op, func(st *models.HomesteadState) error {
		i := bedIndex(st.Beds, bedID)
		if i < 0 {
			return fmt.Errorf("bed %q: %w", bedID, ErrNotFound)
		}
		if cropID != "" && cropIndex(st.Crops, cropID) < 0 {
			return fmt.Errorf("crop %q: %w", cropID, ErrNotFound)
		}
		if err := fn(&st.Beds[i]); err != nil {
			return err
		}
		out = st.Beds[i]
		return nil
	})
	return out, err
}

func checkCell(bed *models.GardenBed, index int) error {
	if index < 0 || index >= len(bed.Grid) {
		return fmt.Errorf("cell %d of bed %q: %w", index, bed.ID, ErrInvalidCell)
	}
	return nil
}

func bedIndex(beds []models.GardenBed, id string) int {
	for i := range beds {
		if beds[i].ID == id {
			return i
		}
	}
	return -1
}
