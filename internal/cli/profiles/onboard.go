package profiles

import (
	"errors"
	"fmt"

	"github.com/julianstephens/reboot/internal/cli"
	"github.com/julianstephens/reboot/internal/content"
	"github.com/julianstephens/reboot/internal/models"
	"github.com/julianstephens/reboot/internal/profile"
	"github.com/julianstephens/reboot/internal/tui"
)

var ErrAlreadyOnboarded = errors.New("onboarding already completed, use 'reboot profile reset' to start over")

// OnboardCmd walks through onboarding. With --addiction it runs without
// prompting.
type OnboardCmd struct {
	Addiction  string   `help:"Addiction type id (see 'reboot onboard --help')." short:"a"`
	CustomName string   `help:"Name for a custom addiction."`
	Goal       string   `help:"Quit goal." enum:"stop,reduce" default:"stop"`
	Trigger    []string `help:"Trigger ids. Repeatable." short:"r"`
	Privacy    string   `help:"Privacy level." enum:"anonymous,named" default:"anonymous"`
}

func (c *OnboardCmd) Run(ctx *cli.Context) error {
	if ctx.Profile.Load().HasCompletedOnboarding {
		return ErrAlreadyOnboarded
	}

	d := profile.NewDraft()
	if c.Addiction == "" {
		if err := tui.OnboardingForm(d).Run(); err != nil {
			return fmt.Errorf("onboarding cancelled: %w", err)
		}
	} else {
		d.Addiction = c.Addiction
		d.CustomName = c.CustomName
		d.QuitGoal = models.QuitGoal(c.Goal)
		d.Privacy = models.PrivacyLevel(c.Privacy)
		for _, t := range c.Trigger {
			d.ToggleTrigger(t)
		}
	}

	p, err := ctx.Profile.Complete(d, ctx.Streaks)
	if err != nil {
		return err
	}

	ctx.Printf("Welcome, %s.\n", p.AnonymousName)
	ctx.Printf("Your %s streak starts today. One day at a time.\n", content.Default().AddictionLabel(p.Addictions[len(p.Addictions)-1].Type))
	return nil
}
