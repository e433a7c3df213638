package notifier

import (
	"fmt"

	"github.com/julianstephens/reboot/internal/logger"
	"github.com/julianstephens/reboot/internal/models"
	"github.com/julianstephens/reboot/internal/streak"
)

// MilestoneTracker is the slice of streak.Tracker used for celebrations.
type MilestoneTracker interface {
	Load(addictionType string) (models.StreakRecord, bool)
	RecordMilestoneOnce(addictionType, label string) bool
}

// CelebrateMilestone records and announces the milestone reached by the
// current streak, at most once per day. It reports the milestone when one
// was newly recorded. Notification failures are logged.
func CelebrateMilestone(streaks MilestoneTracker, sender Sender, addictionType string) (models.Milestone, bool) {
	rec, ok := streaks.Load(addictionType)
	if !ok {
		return models.Milestone{}, false
	}
	m, ok := streak.ReachedMilestone(rec)
	if !ok || !streaks.RecordMilestoneOnce(addictionType, m.Label) {
		return models.Milestone{}, false
	}

	if sender != nil {
		if err := sender.Notify(MilestoneText(m)); err != nil {
			logger.Debug("Milestone notification not delivered", "milestone", m.Label, "error", err)
		}
	}
	return m, true
}

func MilestoneText(m models.Milestone) string {
	return fmt.Sprintf("%s %s reached! %s", m.Badge, m.Label, m.Message)
}
