package models

// HistoryKind classifies an entry in a streak's history log
type HistoryKind string

const (
	HistoryStart     HistoryKind = "start"
	HistoryRelapse   HistoryKind = "relapse"
	HistoryMilestone HistoryKind = "milestone"
)

// HistoryEntry is one append-only event in a streak's history
type HistoryEntry struct {
	Date string      `json:"date"` // YYYY-MM-DD format
	Kind HistoryKind `json:"type"`
	Note string      `json:"note,omitempty"`
}

// StreakRecord tracks continuous abstinence for one addiction type.
// CurrentStreak is persisted for compatibility only; readers recompute it
// from StartDate.
type StreakRecord struct {
	AddictionType string         `json:"addictionType"`
	StartDate     string         `json:"startDate"` // YYYY-MM-DD format
	CurrentStreak int            `json:"currentStreak"`
	BestStreak    int            `json:"bestStreak"`
	LastCheckIn   *string        `json:"lastCheckIn"`
	TotalRelapses int            `json:"totalRelapses"`
	History       []HistoryEntry `json:"history"`
}

// LastEntry returns the most recent history entry, if any.
func (r StreakRecord) LastEntry() (HistoryEntry, bool) {
	if len(r.History) == 0 {
		return HistoryEntry{}, false
	}
	return r.History[len(r.History)-1], true
}

// HasEntry reports whether the history holds an entry of kind on day with note.
func (r StreakRecord) HasEntry(kind HistoryKind, day, note string) bool {
	for _, h := range r.History {
		if h.Kind == kind && h.Date == day && h.Note == note {
			return true
		}
	}
	return false
}

// Milestone is a fixed streak-length threshold with a celebratory label
type Milestone struct {
	Days    int
	Label   string
	Badge   string
	Message string
}

// Milestones is ordered by ascending Days.
var Milestones = []Milestone{
	{Days: 1, Label: "1 Day", Badge: "🌱", Message: "Every journey begins with a single day."},
	{Days: 3, Label: "3 Days", Badge: "🌿", Message: "Your brain is starting to rewire."},
	{Days: 7, Label: "1 Week", Badge: "🌳", Message: "One week strong. The hardest part is behind you."},
	{Days: 14, Label: "2 Weeks", Badge: "⭐", Message: "Two weeks of growth and healing."},
	{Days: 30, Label: "1 Month", Badge: "🏆", Message: "A full month of reclaiming your life."},
	{Days: 60, Label: "2 Months", Badge: "💎", Message: "Your new habits are becoming second nature."},
	{Days: 90, Label: "3 Months", Badge: "👑", Message: "90 days! A major turning point in recovery."},
	{Days: 180, Label: "6 Months", Badge: "🔥", Message: "Half a year of strength and resilience."},
	{Days: 365, Label: "1 Year", Badge: "🌟", Message: "One year free. You are an inspiration."},
}
