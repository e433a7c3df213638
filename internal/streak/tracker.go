// Package streak tracks continuous-abstinence streaks per addiction type.
//
// Records are stored together as one JSON map under constants.KeyStreakData.
// The current streak is never trusted from storage: it is recomputed from the
// anchored start date and today's date on every read.
package streak

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/julianstephens/reboot/internal/clock"
	"github.com/julianstephens/reboot/internal/constants"
	"github.com/julianstephens/reboot/internal/logger"
	"github.com/julianstephens/reboot/internal/models"
	"github.com/julianstephens/reboot/internal/storage"
	"github.com/julianstephens/reboot/internal/utils"
)

const day = 24 * time.Hour

// Tracker mutates streak records in a storage.Provider. Operations never
// return storage errors; failures are logged and the caller sees the same
// result as for absent data.
type Tracker struct {
	mu    sync.Mutex
	store storage.Provider
	clock clock.Clock
	loc   *time.Location
}

type Option func(*Tracker)

// WithLocation sets the time zone that defines "today". The default is UTC.
func WithLocation(loc *time.Location) Option {
	return func(t *Tracker) {
		if loc != nil {
			t.loc = loc
		}
	}
}

func NewTracker(store storage.Provider, clk clock.Clock, opts ...Option) *Tracker {
	t := &Tracker{
		store: store,
		clock: clk,
		loc:   time.UTC,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// DaysBetween returns the absolute number of whole days between two instants.
func DaysBetween(start, end time.Time) int {
	d := end.Sub(start)
	if d < 0 {
		d = -d
	}
	return int(d / day)
}

// Today returns the tracker's current calendar date in YYYY-MM-DD form.
func (t *Tracker) Today() string {
	return utils.DateString(t.clock.Now(), t.loc)
}

// Load returns the recomputed record for addictionType. It reports false
// when no record exists or the stored data cannot be parsed. Load does not
// write the recomputed values back.
func (t *Tracker) Load(addictionType string) (models.StreakRecord, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	all := t.loadAll()
	return t.lookup(all.records, addictionType, t.Today())
}

// All returns every stored record, recomputed, keyed by addiction type.
// Records with an unparsable start date are skipped.
func (t *Tracker) All() map[string]models.StreakRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := t.Today()
	out := make(map[string]models.StreakRecord)
	all := t.loadAll()
	for key := range all.records {
		if rec, ok := t.lookup(all.records, key, today); ok {
			out[key] = rec
		}
	}
	return out
}

// Start anchors a new streak at today. Best streak, relapse count and
// history carry over from any existing record.
func (t *Tracker) Start(addictionType string) models.StreakRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := t.Today()
	all := t.loadAll()
	prev, _ := t.lookup(all.records, addictionType, today)

	rec := models.StreakRecord{
		AddictionType: addictionType,
		StartDate:     today,
		CurrentStreak: 0,
		BestStreak:    prev.BestStreak,
		LastCheckIn:   &today,
		TotalRelapses: prev.TotalRelapses,
		History:       appendEntry(prev.History, models.HistoryEntry{Date: today, Kind: models.HistoryStart}),
	}

	all.put(addictionType, rec)
	t.saveAll(all)
	logger.Info("Streak started", "type", addictionType, "date", today)
	return rec
}

// RecordRelapse re-anchors an existing streak at today. The ended streak
// still counts toward the best streak. It reports false when there is no
// record for addictionType.
func (t *Tracker) RecordRelapse(addictionType, trigger, feeling string) (models.StreakRecord, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := t.Today()
	all := t.loadAll()
	rec, ok := t.lookup(all.records, addictionType, today)
	if !ok {
		return models.StreakRecord{}, false
	}

	entry := models.HistoryEntry{Date: today, Kind: models.HistoryRelapse}
	if trigger != "" {
		entry.Note = RelapseNote(trigger, feeling)
	}

	rec.StartDate = today
	rec.CurrentStreak = 0
	rec.TotalRelapses++
	rec.LastCheckIn = &today
	rec.History = appendEntry(rec.History, entry)

	all.put(addictionType, rec)
	t.saveAll(all)
	logger.Info("Relapse recorded", "type", addictionType, "total", rec.TotalRelapses)
	return rec, true
}

// RecordMilestone appends a milestone entry to an existing record. The
// streak anchor is unchanged. It reports false when there is no record.
func (t *Tracker) RecordMilestone(addictionType, label string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := t.Today()
	all := t.loadAll()
	rec, ok := t.lookup(all.records, addictionType, today)
	if !ok {
		return false
	}

	rec.LastCheckIn = &today
	rec.History = appendEntry(rec.History, models.HistoryEntry{Date: today, Kind: models.HistoryMilestone, Note: label})

	all.put(addictionType, rec)
	t.saveAll(all)
	return true
}

// RecordMilestoneOnce appends a milestone entry unless one with the same
// label was already recorded today. The check and the write happen under one
// lock. It reports false when there is no record or the entry exists.
func (t *Tracker) RecordMilestoneOnce(addictionType, label string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := t.Today()
	all := t.loadAll()
	rec, ok := t.lookup(all.records, addictionType, today)
	if !ok || rec.HasEntry(models.HistoryMilestone, today, label) {
		return false
	}

	rec.LastCheckIn = &today
	rec.History = appendEntry(rec.History, models.HistoryEntry{Date: today, Kind: models.HistoryMilestone, Note: label})

	all.put(addictionType, rec)
	t.saveAll(all)
	logger.Info("Milestone recorded", "type", addictionType, "milestone", label)
	return true
}

// RelapseNote formats the history note for a relapse with a known trigger.
func RelapseNote(trigger, feeling string) string {
	if feeling == "" {
		feeling = "Not specified"
	}
	return fmt.Sprintf("Trigger: %s. Feeling: %s", trigger, feeling)
}

// ReachedMilestone reports the milestone whose threshold equals the
// record's current streak exactly.
func ReachedMilestone(rec models.StreakRecord) (models.Milestone, bool) {
	for _, m := range models.Milestones {
		if m.Days == rec.CurrentStreak {
			return m, true
		}
	}
	return models.Milestone{}, false
}

// lookup recomputes the stored record for key as of today.
func (t *Tracker) lookup(all map[string]models.StreakRecord, key, today string) (models.StreakRecord, bool) {
	rec, ok := all[key]
	if !ok {
		return models.StreakRecord{}, false
	}

	start, err := utils.ParseDate(rec.StartDate)
	if err != nil {
		logger.Warn("Ignoring streak record with invalid start date", "type", key, "startDate", rec.StartDate, "error", err)
		return models.StreakRecord{}, false
	}
	now, err := utils.ParseDate(today)
	if err != nil {
		return models.StreakRecord{}, false
	}

	rec.CurrentStreak = DaysBetween(start, now)
	if rec.CurrentStreak > rec.BestStreak {
		rec.BestStreak = rec.CurrentStreak
	}
	return rec, true
}

// streakMap is the decoded streak document. Entries that fail to decode
// stay in undecoded and are written back unchanged.
type streakMap struct {
	records   map[string]models.StreakRecord
	undecoded map[string]json.RawMessage
}

func (m streakMap) put(key string, rec models.StreakRecord) {
	delete(m.undecoded, key)
	m.records[key] = rec
}

// loadAll reads the streak map entry by entry. Missing or unreadable data
// is empty; a corrupt entry is absent while its siblings still load.
func (t *Tracker) loadAll() streakMap {
	all := streakMap{
		records:   make(map[string]models.StreakRecord),
		undecoded: make(map[string]json.RawMessage),
	}

	var raw map[string]json.RawMessage
	err := storage.GetJSON(t.store, constants.KeyStreakData, &raw)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return all
	case err != nil:
		logger.Warn("Failed to load streak data", "error", err)
		return all
	}

	for key, entry := range raw {
		var rec models.StreakRecord
		if err := json.Unmarshal(entry, &rec); err != nil {
			logger.Warn("Ignoring malformed streak record", "type", key, "error", err)
			all.undecoded[key] = entry
			continue
		}
		all.records[key] = rec
	}
	return all
}

func (t *Tracker) saveAll(all streakMap) {
	out := make(map[string]any, len(all.records)+len(all.undecoded))
	for key, entry := range all.undecoded {
		out[key] = entry
	}
	for key, rec := range all.records {
		out[key] = rec
	}
	if err := storage.SetJSON(t.store, constants.KeyStreakData, out); err != nil {
		logger.Warn("Failed to save streak data", "error", err)
	}
}

// appendEntry copies history so records returned to callers never alias.
func appendEntry(history []models.HistoryEntry, entry models.HistoryEntry) []models.HistoryEntry {
	out := make([]models.HistoryEntry, 0, len(history)+1)
	out = append(out, history...)
	return append(out, entry)
}
