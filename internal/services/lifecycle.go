package services

import (
	"errors"
	"math"
	"time"

	"github.com/sproutworks/ecopods/internal/models"
)

var ErrUnknownStatus = errors.New("unknown order status")

type StatusStep struct {
	Key   string
	Label string
}

// StatusSteps lists the canonical forward order of the pipeline together
// with the labels shown to users.
var StatusSteps = []StatusStep{
	{Key: models.StatusPlaced, Label: "Placed"},
	{Key: models.StatusScheduled, Label: "Pickup Scheduled"},
	{Key: models.StatusPicked, Label: "Waste Picked"},
	{Key: models.StatusMaking, Label: "Pods in Making"},
	{Key: models.StatusReady, Label: "Pods Ready"},
	{Key: models.StatusDelivered, Label: "Delivered"},
}

func StatusIndex(status string) int {
	for index, step := range StatusSteps {
		if step.Key == status {
			return index
		}
	}
	return -1
}

func IsValidStatus(status string) bool {
	return StatusIndex(status) >= 0
}

func StatusLabel(status string) string {
	if index := StatusIndex(status); index >= 0 {
		return StatusSteps[index].Label
	}
	return status
}

// ProgressPercent maps a status to its rounded completion percentage:
// placed is 17, delivered is 100. Unknown statuses map to 0.
func ProgressPercent(status string) int {
	index := StatusIndex(status)
	if index < 0 {
		return 0
	}
	return int(math.Round(float64(index+1) / float64(len(StatusSteps)) * 100))
}

// ApplyStatus appends exactly one timeline entry and moves the order to
// the new status. Any canonical status is accepted, including backward and
// skip-ahead jumps; the pipeline is deliberately not enforced as strictly
// sequential.
func ApplyStatus(order *models.Order, status string, at time.Time) error {
	if !IsValidStatus(status) {
		return ErrUnknownStatus
	}
	order.Status = status
	order.Timeline = append(order.Timeline, models.TimelineEntry{Status: status, At: at})
	return nil
}
