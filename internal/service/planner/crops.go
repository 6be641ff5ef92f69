package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/mamadbah2/homestead/internal/domain/models"
)

// NewCropRequest adds either a catalog crop (CatalogID + Beds) or a custom record.
type NewCropRequest struct {
	CatalogID string       `json:"catalogId"`
	Beds      float64      `json:"beds" binding:"min=0"`
	Crop      *models.Crop `json:"crop"`
}

// AddCrop appends a crop and returns it with its id.
func (s *Service) AddCrop(ctx context.Context, req NewCropRequest) (models.Crop, error) {
	var crop models.Crop
	switch {
	case req.CatalogID != "":
		data, ok := s.catalog.CropByID(req.CatalogID)
		if !ok {
			return models.Crop{}, fmt.Errorf("catalog crop %q: %w", req.CatalogID, ErrNotFound)
		}
		crop = data.ToCrop(req.Beds)
	case req.Crop != nil:
		crop = *req.Crop
	default:
		return models.Crop{}, fmt.Errorf("crop needs a catalogId or a crop record: %w", ErrInvalidInput)
	}

	if strings.TrimSpace(crop.Name) == "" {
		return models.Crop{}, fmt.Errorf("crop name is required: %w", ErrInvalidInput)
	}

	_, err := s.mutate(ctx, "add crop", func(st *models.HomesteadState) error {
		id, err := s.id()
		if err != nil {
			return err
		}
		crop.ID = id
		st.Crops = append(st.Crops, crop)
		return nil
	})
	if err != nil {
		return models.Crop{}, err
	}
	return crop, nil
}

// UpdateCrop patches a crop.
func (s *Service) UpdateCrop(ctx context.Context, id string, patch models.CropPatch) (models.Crop, error) {
	var updated models.Crop
	_, err := s.mutate(ctx, "update crop", func(st *models.HomesteadState) error {
		i := cropIndex(st.Crops, id)
		if i < 0 {
			return fmt.Errorf("crop %q: %w", id, ErrNotFound)
		}
		st.Crops[i] = patch.Apply(st.Crops[i])
		updated = st.Crops[i]
		return nil
	})
	return updated, err
}

// RemoveCrop deletes a crop and clears it from every bed.
func (s *Service) RemoveCrop(ctx context.Context, id string) error {
	_, err := s.mutate(ctx, "remove crop", func(st *models.HomesteadState) error {
		i := cropIndex(st.Crops, id)
		if i < 0 {
			return fmt.Errorf("crop %q: %w", id, ErrNotFound)
		}
		st.Crops = append(st.Crops[:i], st.Crops[i+1:]...)

		for b := range st.Beds {
			bed := &st.Beds[b]
			bed.Crops = without(bed.Crops, id)
			for c, cell := range bed.Grid {
				if cell == id {
					bed.Grid[c] = ""
				}
			}
		}
		return nil
	})
	return err
}

// AddLivestock appends a livestock group.
func (s *Service) AddLivestock(ctx context.Context, item models.LivestockItem) (models.LivestockItem, error) {
	if strings.TrimSpace(item.Name) == "" {
		return models.LivestockItem{}, fmt.Errorf("livestock name is required: %w", ErrInvalidInput)
	}

	_, err := s.mutate(ctx, "add livestock", func(st *models.HomesteadState) error {
		id, err := s.id()
		if err != nil {
			return err
		}
		item.ID = id
		st.Livestock = append(st.Livestock, item)
		return nil
	})
	if err != nil {
		return models.LivestockItem{}, err
	}
	return item, nil
}

// UpdateLivestock patches a livestock group.
func (s *Service) UpdateLivestock(ctx context.Context, id string, patch models.LivestockPatch) (models.LivestockItem, error) {
	var updated models.LivestockItem
	_, err := s.mutate(ctx, "update livestock", func(st *models.HomesteadState) error {
		for i := range st.Livestock {
			if st.Livestock[i].ID == id {
				st.Livestock[i] = patch.Apply(st.Livestock[i])
				updated = st.Livestock[i]
				return nil
			}
		}
		return fmt.Errorf("livestock %q: %w", id, ErrNotFound)
	})
	return updated, err
}

// RemoveLivestock deletes a livestock group.
func (s *Service) RemoveLivestock(ctx context.Context, id string) error {
	_, err := s.mutate(ctx, "remove livestock", func(st *models.HomesteadState) error {
		for i := range st.Livestock {
			if st.Livestock[i].ID == id {
				st.Livestock = append(st.Livestock[:i], st.Livestock[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("livestock %q: %w", id, ErrNotFound)
	})
	return err
}

func cropIndex(crops []models.Crop, id string) int {
	for i := range crops {
		if crops[i].ID == id {
			return i
		}
	}
	return -1
}

func without(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
