package craving

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/reboot/internal/clock"
	"github.com/julianstephens/reboot/internal/constants"
	"github.com/julianstephens/reboot/internal/logger"
	"github.com/julianstephens/reboot/internal/models"
	"github.com/julianstephens/reboot/internal/storage"
	"github.com/julianstephens/reboot/internal/utils"
)

// Log is the append-only craving history stored under
// constants.KeyCravingLog. Like the streak tracker it never surfaces
// storage errors.
type Log struct {
	mu    sync.Mutex
	store storage.Provider
	clock clock.Clock
	loc   *time.Location
}

type LogOption func(*Log)

// WithLogLocation sets the time zone used by Today. The default is UTC.
func WithLogLocation(loc *time.Location) LogOption {
	return func(l *Log) {
		if loc != nil {
			l.loc = loc
		}
	}
}

func NewLog(store storage.Provider, clk clock.Clock, opts ...LogOption) *Log {
	l := &Log{store: store, clock: clk, loc: time.UTC}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Append assigns an id and timestamp to entry and stores it. Intensity is
// clamped to 1-10.
func (l *Log) Append(entry models.CravingEntry) models.CravingEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry.ID = uuid.NewString()
	entry.Timestamp = l.clock.Now().UTC().Format(time.RFC3339Nano)
	switch {
	case entry.Intensity < 1:
		entry.Intensity = 1
	case entry.Intensity > 10:
		entry.Intensity = 10
	}

	entries := l.load()
	entries = append(entries, entry)
	if err := storage.SetJSON(l.store, constants.KeyCravingLog, entries); err != nil {
		logger.Warn("Failed to save craving log", "error", err)
	}
	return entry
}

// History returns every entry, oldest first.
func (l *Log) History() []models.CravingEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load()
}

// Today returns the entries logged on the current calendar date.
func (l *Log) Today() []models.CravingEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	today := utils.DateString(l.clock.Now(), l.loc)
	var out []models.CravingEntry
	for _, e := range l.load() {
		ts := e.Time()
		if ts.IsZero() {
			continue
		}
		if utils.DateString(ts, l.loc) == today {
			out = append(out, e)
		}
	}
	return out
}

// Stats summarizes the full history.
func (l *Log) Stats() models.CravingStats {
	return Summarize(l.History())
}

// Summarize computes success rate (rounded percent) and average intensity
// (one decimal) over entries.
func Summarize(entries []models.CravingEntry) models.CravingStats {
	stats := models.CravingStats{Total: len(entries)}
	if stats.Total == 0 {
		return stats
	}

	sum := 0
	for _, e := range entries {
		if e.Overcame {
			stats.Overcome++
		}
		sum += e.Intensity
	}
	stats.SuccessRate = int(math.Round(float64(stats.Overcome) / float64(stats.Total) * 100))
	stats.AverageIntensity = math.Round(float64(sum)/float64(stats.Total)*10) / 10
	return stats
}

func (l *Log) load() []models.CravingEntry {
	var entries []models.CravingEntry
	err := storage.GetJSON(l.store, constants.KeyCravingLog, &entries)
	switch {
	case err == nil:
		return entries
	case errors.Is(err, storage.ErrNotFound):
		return nil
	default:
		logger.Warn("Failed to load craving log", "error", err)
		return nil
	}
}
