package yield

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mamadbah2/homestead/internal/domain/models"
)

const (
	windowLayout             = "Jan 2"
	defaultPlantingSpanDays  = 14
	defaultHarvestWindowDays = 14
)

// ErrInvalidWindow reports a planting window that is not in "Mon D" form.
var ErrInvalidWindow = errors.New("invalid planting window")

// HarvestEvent is one crop's planting and harvest span for the year.
type HarvestEvent struct {
	CropID        string    `json:"cropId"`
	CropName      string    `json:"cropName"`
	Season        string    `json:"season"`
	PlantingStart time.Time `json:"plantingStart"`
	PlantingEnd   time.Time `json:"plantingEnd"`
	HarvestStart  time.Time `json:"harvestStart"`
	HarvestEnd    time.Time `json:"harvestEnd"`
}

// Calendar lists harvest events ordered by harvest start. Skipped names
// crops whose planting window could not be parsed.
type Calendar struct {
	Events  []HarvestEvent `json:"events"`
	Skipped []string       `json:"skipped,omitempty"`
}

// ByMonth groups events by the month their harvest starts.
func (c Calendar) ByMonth() map[time.Month][]HarvestEvent {
	out := make(map[time.Month][]HarvestEvent)
	for _, ev := range c.Events {
		m := ev.HarvestStart.Month()
		out[m] = append(out[m], ev)
	}
	return out
}

// ParsePlantingWindow reads a "Mar 15" style date in the given year.
func ParsePlantingWindow(window string, year int) (time.Time, error) {
	t, err := time.Parse(windowLayout, strings.TrimSpace(window))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrInvalidWindow, window, err)
	}
	return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// EstimatePlantingDate counts daysToHarvest back from the target harvest date.
func EstimatePlantingDate(targetHarvest time.Time, daysToHarvest int) time.Time {
	return targetHarvest.AddDate(0, 0, -daysToHarvest)
}

// HarvestCalendar builds the year's harvest events. Crops without a planting
// window start or days to harvest are left out.
func HarvestCalendar(crops []models.Crop, year int) Calendar {
	cal := Calendar{Events: []HarvestEvent{}}

	for _, crop := range crops {
		if crop.PlantingWindowStart == "" || crop.DaysToHarvest == nil || *crop.DaysToHarvest <= 0 {
			continue
		}

		start, err := ParsePlantingWindow(crop.PlantingWindowStart, year)
		if err != nil {
			cal.Skipped = append(cal.Skipped, crop.Name)
			continue
		}

		end := start.AddDate(0, 0, defaultPlantingSpanDays)
		if crop.PlantingWindowEnd != "" {
			end, err = ParsePlantingWindow(crop.PlantingWindowEnd, year)
			if err != nil {
				cal.Skipped = append(cal.Skipped, crop.Name)
				continue
			}
		}

		window := defaultHarvestWindowDays
		if crop.HarvestWindowDays != nil {
			window = *crop.HarvestWindowDays
		}

		harvestStart := start.AddDate(0, 0, *crop.DaysToHarvest)
		cal.Events = append(cal.Events, HarvestEvent{
			CropID:        crop.ID,
			CropName:      crop.Name,
			Season:        crop.Season,
			PlantingStart: start,
			PlantingEnd:   end,
			HarvestStart:  harvestStart,
			HarvestEnd:    harvestStart.AddDate(0, 0, window),
		})
	}

	sort.SliceStable(cal.Events, func(i, j int) bool {
		return cal.Events[i].HarvestStart.Before(cal.Events[j].HarvestStart)
	})
	return cal
}
