package profile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/reboot/internal/models"
	"github.com/julianstephens/reboot/internal/utils"
)

// Onboarding steps. StepWelcome and StepReady have no input.
const (
	StepWelcome = iota
	StepAddiction
	StepQuitGoal
	StepTriggers
	StepPrivacy
	StepReady

	TotalSteps = StepReady
)

var ErrIncompleteStep = errors.New("onboarding step is incomplete")

// StreakStarter starts the streak for a newly onboarded addiction.
type StreakStarter interface {
	Start(addictionType string) models.StreakRecord
}

// Draft holds onboarding answers until they are committed.
type Draft struct {
	Step       int
	Addiction  string
	CustomName string
	QuitGoal   models.QuitGoal
	Triggers   []string
	Privacy    models.PrivacyLevel
}

func NewDraft() *Draft {
	return &Draft{
		QuitGoal: models.QuitGoalStop,
		Privacy:  models.PrivacyAnonymous,
	}
}

// CanProceed reports whether step has the input it requires.
func (d *Draft) CanProceed(step int) bool {
	switch step {
	case StepAddiction:
		if d.Addiction == "" {
			return false
		}
		return d.Addiction != models.CustomAddictionID || strings.TrimSpace(d.CustomName) != ""
	case StepQuitGoal:
		return d.QuitGoal == models.QuitGoalReduce || d.QuitGoal == models.QuitGoalStop
	case StepTriggers:
		return len(d.Triggers) > 0
	case StepPrivacy:
		return d.Privacy == models.PrivacyAnonymous || d.Privacy == models.PrivacyNamed
	default:
		return true
	}
}

// Next moves forward one step if the current step is complete.
func (d *Draft) Next() error {
	if !d.CanProceed(d.Step) {
		return fmt.Errorf("%w: step %d", ErrIncompleteStep, d.Step)
	}
	if d.Step < StepReady {
		d.Step++
	}
	return nil
}

func (d *Draft) Prev() {
	if d.Step > 0 {
		d.Step--
	}
}

// ToggleTrigger adds id to the selected triggers, or removes it if present.
func (d *Draft) ToggleTrigger(id string) {
	for i, t := range d.Triggers {
		if t == id {
			d.Triggers = append(d.Triggers[:i:i], d.Triggers[i+1:]...)
			return
		}
	}
	d.Triggers = append(d.Triggers, id)
}

// AddictionType is the stored type: the custom name for custom entries.
func (d *Draft) AddictionType() string {
	if d.Addiction == models.CustomAddictionID {
		return strings.TrimSpace(d.CustomName)
	}
	return d.Addiction
}

// Complete commits the draft: it records the addiction, saves the privacy
// level, starts the streak and marks onboarding as done.
func (m *Manager) Complete(d *Draft, streaks StreakStarter) (models.Profile, error) {
	for step := StepAddiction; step <= StepPrivacy; step++ {
		if !d.CanProceed(step) {
			return models.Profile{}, fmt.Errorf("%w: step %d", ErrIncompleteStep, step)
		}
	}

	addiction := models.Addiction{
		Type:      d.AddictionType(),
		QuitGoal:  d.QuitGoal,
		Triggers:  append([]string(nil), d.Triggers...),
		StartDate: utils.DateString(m.clock.Now(), m.loc),
	}
	if d.Addiction == models.CustomAddictionID {
		addiction.CustomName = strings.TrimSpace(d.CustomName)
	}

	m.AddAddiction(addiction)
	m.Save(func(p *models.Profile) { p.PrivacyLevel = d.Privacy })
	streaks.Start(addiction.Type)
	return m.CompleteOnboarding(), nil
}
