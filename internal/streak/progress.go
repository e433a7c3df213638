package streak

import (
	"fmt"

	"github.com/julianstephens/reboot/internal/constants"
	"github.com/julianstephens/reboot/internal/models"
)

// NextMilestone returns the first milestone beyond current, or the final
// milestone once every threshold has been passed.
func NextMilestone(current int) models.Milestone {
	for _, m := range models.Milestones {
		if m.Days > current {
			return m
		}
	}
	return models.Milestones[len(models.Milestones)-1]
}

// CurrentMilestone returns the highest milestone already reached.
func CurrentMilestone(current int) (models.Milestone, bool) {
	for i := len(models.Milestones) - 1; i >= 0; i-- {
		if models.Milestones[i].Days <= current {
			return models.Milestones[i], true
		}
	}
	return models.Milestone{}, false
}

// ProgressToNext returns how far current is between the previous and next
// milestone, as a percentage clamped to [0, 100].
func ProgressToNext(current int) float64 {
	next := NextMilestone(current)
	prevDays := 0
	if m, ok := CurrentMilestone(current); ok {
		prevDays = m.Days
	}
	if next.Days <= prevDays {
		return 100
	}

	pct := float64(current-prevDays) / float64(next.Days-prevDays) * 100
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return pct
}

// DaysUntilNext returns the days remaining to the next milestone, 0 once the
// last one has been reached.
func DaysUntilNext(current int) int {
	next := NextMilestone(current)
	if current >= next.Days {
		return 0
	}
	return next.Days - current
}

// TimeSaved estimates reclaimed time, rendered in whole hours once it
// exceeds an hour.
func TimeSaved(current int) string {
	minutes := current * constants.MinutesSavedPerDay
	if hours := minutes / 60; hours > 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dm", minutes)
}

// MoneySaved estimates money not spent. Empty when nothing was saved yet.
func MoneySaved(current int) string {
	saved := current * constants.DollarsSavedPerDay
	if saved <= 0 {
		return ""
	}
	return fmt.Sprintf("$%d", saved)
}
