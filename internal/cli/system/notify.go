package system

import (
	"github.com/julianstephens/reboot/internal/cli"
	"github.com/julianstephens/reboot/internal/notifier"
	"github.com/julianstephens/reboot/internal/streak"
)

// NotifyCmd is run periodically by the tray helper to announce milestones.
type NotifyCmd struct {
	DryRun bool `help:"Print notifications to stdout instead of sending them."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	if !ctx.Profile.Load().HasCompletedOnboarding {
		if c.DryRun {
			ctx.Println("Onboarding not completed.")
		}
		return nil
	}

	for addiction := range ctx.Streaks.All() {
		if c.DryRun {
			rec, ok := ctx.Streaks.Load(addiction)
			if !ok {
				continue
			}
			if m, ok := streak.ReachedMilestone(rec); ok {
				ctx.Println("[DryRun] " + notifier.MilestoneText(m))
			}
			continue
		}
		notifier.CelebrateMilestone(ctx.Streaks, ctx.Notifier, addiction)
	}
	return nil
}
