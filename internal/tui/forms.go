package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/reboot/internal/content"
	"github.com/julianstephens/reboot/internal/models"
	"github.com/julianstephens/reboot/internal/profile"
)

// BuddyFormModel represents the form model for adding a buddy
type BuddyFormModel struct {
	Name  string
	Phone string
}

// RelapseFormModel represents the form model for logging a relapse
type RelapseFormModel struct {
	Trigger string
	Feeling string
}

func options(opts []content.Option) []huh.Option[string] {
	out := make([]huh.Option[string], len(opts))
	for i, o := range opts {
		out[i] = huh.NewOption(o.Label, o.ID)
	}
	return out
}

func notBlank(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

// OnboardingForm collects the onboarding answers into d. Each group is one
// onboarding step; the custom name group only shows for custom addictions.
func OnboardingForm(d *profile.Draft) *huh.Form {
	catalog := content.Default()
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to reboot").
				Description("A private place to break a habit, one day at a time.\nNothing you enter leaves this device."),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What do you want to work on?").
				Options(options(catalog.Addictions)...).
				Value(&d.Addiction),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Name it").
				Value(&d.CustomName).
				Validate(notBlank("name")),
		).WithHideFunc(func() bool { return d.Addiction != models.CustomAddictionID }),
		huh.NewGroup(
			huh.NewSelect[models.QuitGoal]().
				Title("What is your goal?").
				Options(
					huh.NewOption("Stop completely", models.QuitGoalStop),
					huh.NewOption("Cut down", models.QuitGoalReduce),
				).
				Value(&d.QuitGoal),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("What usually triggers it?").
				Options(options(catalog.Triggers)...).
				Value(&d.Triggers).
				Validate(func(s []string) error {
					if len(s) == 0 {
						return fmt.Errorf("pick at least one trigger")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewSelect[models.PrivacyLevel]().
				Title("How do you want to appear?").
				Options(
					huh.NewOption("Anonymous", models.PrivacyAnonymous),
					huh.NewOption("Named", models.PrivacyNamed),
				).
				Value(&d.Privacy),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewBuddyForm creates a new form for adding buddies
func NewBuddyForm(fm *BuddyFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(notBlank("name")),
			huh.NewInput().
				Title("Phone").
				Value(&fm.Phone).
				Validate(notBlank("phone")),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewRelapseForm creates a new form for logging a relapse
func NewRelapseForm(fm *RelapseFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What triggered it?").
				Options(options(content.Default().Triggers)...).
				Value(&fm.Trigger),
			huh.NewInput().
				Title("How are you feeling?").
				Description("Optional").
				Value(&fm.Feeling),
		),
	).WithTheme(huh.ThemeDracula())
}
