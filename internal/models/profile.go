package models

// QuitGoal expresses whether the user wants to cut down or stop entirely
type QuitGoal string

// PrivacyLevel controls how the user appears in community features
type PrivacyLevel string

const (
	QuitGoalReduce QuitGoal = "reduce"
	QuitGoalStop   QuitGoal = "stop"

	PrivacyAnonymous PrivacyLevel = "anonymous"
	PrivacyNamed     PrivacyLevel = "named"

	// CustomAddictionID is the addiction type id that requires a custom name
	CustomAddictionID = "custom"
)

// Addiction is one behavior the user is working on
type Addiction struct {
	Type       string   `json:"type"`
	CustomName string   `json:"customName,omitempty"`
	QuitGoal   QuitGoal `json:"quitGoal"`
	Triggers   []string `json:"triggers"`
	StartDate  string   `json:"startDate"` // YYYY-MM-DD format
}

// Profile holds onboarding state and preferences
type Profile struct {
	HasCompletedOnboarding bool         `json:"hasCompletedOnboarding"`
	AnonymousName          string       `json:"anonymousName"`
	Addictions             []Addiction  `json:"addictions"`
	PrivacyLevel           PrivacyLevel `json:"privacyLevel"`
	HasAccountabilityBuddy bool         `json:"hasAccountabilityBuddy"`
	BuddyContact           string       `json:"buddyContact,omitempty"`
}

// PrimaryAddictionType returns the streak key for the first onboarded
// addiction, or fallback when there is none.
func (p Profile) PrimaryAddictionType(fallback string) string {
	if len(p.Addictions) == 0 || p.Addictions[0].Type == "" {
		return fallback
	}
	return p.Addictions[0].Type
}
