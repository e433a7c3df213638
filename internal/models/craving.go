package models

import "time"

// CravingEntry is an immutable record of one craving episode
type CravingEntry struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"` // RFC 3339, UTC
	Intensity int    `json:"intensity"` // 1-10
	Trigger   string `json:"trigger,omitempty"`
	Overcame  bool   `json:"overcame"`
	Technique string `json:"technique,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// Time parses Timestamp, returning the zero time when it is malformed.
func (e CravingEntry) Time() time.Time {
	t, err := time.Parse(time.RFC3339Nano, e.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// CravingStats summarizes the craving log
type CravingStats struct {
	Total            int
	Overcome         int
	SuccessRate      int     // percent, rounded
	AverageIntensity float64 // one decimal
}
