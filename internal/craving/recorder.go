package craving

import (
	"github.com/julianstephens/reboot/internal/constants"
	"github.com/julianstephens/reboot/internal/models"
)

// RelapseRecorder is the part of the streak tracker the recorder needs.
type RelapseRecorder interface {
	RecordRelapse(addictionType, trigger, feeling string) (models.StreakRecord, bool)
}

// Recorder forwards finished interventions to the craving log and, for
// cravings that were not overcome, to the streak tracker.
type Recorder struct {
	log     *Log
	streaks RelapseRecorder
}

func NewRecorder(log *Log, streaks RelapseRecorder) *Recorder {
	return &Recorder{log: log, streaks: streaks}
}

// Complete logs outcome and records a relapse when the craving won. The
// journal notes double as the relapse trigger.
func (r *Recorder) Complete(addictionType string, intensity int, outcome Outcome) models.CravingEntry {
	entry := r.log.Append(models.CravingEntry{
		Intensity: intensity,
		Overcame:  outcome.Overcame,
		Notes:     outcome.Notes,
	})
	if !outcome.Overcame {
		r.streaks.RecordRelapse(addictionType, outcome.Notes, "")
	}
	return entry
}

// Reset is the manual "reset streak" action.
func (r *Recorder) Reset(addictionType string) (models.StreakRecord, bool) {
	return r.streaks.RecordRelapse(addictionType, constants.ManualResetTrigger, "")
}

// Record logs a craving entered after the fact. A craving that was not
// overcome relapses the streak with the entry's trigger and notes.
func (r *Recorder) Record(addictionType string, entry models.CravingEntry) models.CravingEntry {
	entry = r.log.Append(entry)
	if !entry.Overcame {
		r.streaks.RecordRelapse(addictionType, entry.Trigger, entry.Notes)
	}
	return entry
}
