package streaks

import (
	"errors"
	"fmt"

	"github.com/julianstephens/reboot/internal/cli"
	"github.com/julianstephens/reboot/internal/content"
	"github.com/julianstephens/reboot/internal/streak"
)

var ErrNoStreak = errors.New("no streak started yet, run 'reboot onboard' or 'reboot streak start'")

type StreakCmd struct {
	Show      ShowCmd      `cmd:"" help:"Show the current streak." default:"1"`
	Start     StartCmd     `cmd:"" help:"Start (or restart) a streak today."`
	Relapse   RelapseCmd   `cmd:"" help:"Record a relapse and reset the current streak."`
	Milestone MilestoneCmd `cmd:"" help:"Record and announce a milestone reached today."`
}

type ShowCmd struct {
	Type    string `help:"Addiction type. Defaults to the onboarded addiction." short:"t"`
	History bool   `help:"Include the full history."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	addiction := ctx.AddictionType(c.Type)
	rec, ok := ctx.Streaks.Load(addiction)
	if !ok {
		return ErrNoStreak
	}

	ctx.Printf("%s\n\n", content.Default().AddictionLabel(addiction))
	ctx.Printf("  Current streak: %s\n", days(rec.CurrentStreak))
	ctx.Printf("  Best streak:    %s\n", days(rec.BestStreak))
	ctx.Printf("  Relapses:       %d\n", rec.TotalRelapses)
	ctx.Printf("  Started:        %s\n", rec.StartDate)

	if m, ok := streak.CurrentMilestone(rec.CurrentStreak); ok {
		ctx.Printf("  Milestone:      %s %s\n", m.Badge, m.Label)
	}
	next := streak.NextMilestone(rec.CurrentStreak)
	if next.Days > rec.CurrentStreak {
		ctx.Printf("  Next:           %s in %s (%.0f%%)\n", next.Label, days(streak.DaysUntilNext(rec.CurrentStreak)), streak.ProgressToNext(rec.CurrentStreak))
	}
	ctx.Printf("  Time saved:     %s\n", streak.TimeSaved(rec.CurrentStreak))
	if money := streak.MoneySaved(rec.CurrentStreak); money != "" {
		ctx.Printf("  Money saved:    %s\n", money)
	}

	if c.History {
		ctx.Println("\nHistory:")
		for _, h := range rec.History {
			line := fmt.Sprintf("  %s  %-9s", h.Date, h.Kind)
			if h.Note != "" {
				line += "  " + h.Note
			}
			ctx.Println(line)
		}
	}

	ctx.CelebrateMilestone(addiction)
	return nil
}

type StartCmd struct {
	Type string `help:"Addiction type. Defaults to the onboarded addiction." short:"t"`
}

func (c *StartCmd) Run(ctx *cli.Context) error {
	addiction := ctx.AddictionType(c.Type)
	rec := ctx.Streaks.Start(addiction)
	ctx.Printf("✓ Streak started for %s on %s\n", content.Default().AddictionLabel(addiction), rec.StartDate)
	return nil
}

type RelapseCmd struct {
	Type    string `help:"Addiction type. Defaults to the onboarded addiction." short:"t"`
	Trigger string `help:"What triggered the relapse." default:"Unknown"`
	Feeling string `help:"How you were feeling."`
}

func (c *RelapseCmd) Run(ctx *cli.Context) error {
	addiction := ctx.AddictionType(c.Type)
	rec, ok := ctx.Streaks.RecordRelapse(addiction, content.Default().TriggerLabel(c.Trigger), c.Feeling)
	if !ok {
		return ErrNoStreak
	}
	ctx.Printf("Streak reset. Your best streak is still %s.\n", days(rec.BestStreak))
	ctx.Println("A relapse is part of recovery, not the end of it. Today is day zero.")
	return nil
}

type MilestoneCmd struct {
	Type string `help:"Addiction type. Defaults to the onboarded addiction." short:"t"`
}

func (c *MilestoneCmd) Run(ctx *cli.Context) error {
	addiction := ctx.AddictionType(c.Type)
	rec, ok := ctx.Streaks.Load(addiction)
	if !ok {
		return ErrNoStreak
	}
	m, reached := streak.ReachedMilestone(rec)
	if !reached {
		ctx.Printf("No milestone today. Next: %s in %s.\n", streak.NextMilestone(rec.CurrentStreak).Label, days(streak.DaysUntilNext(rec.CurrentStreak)))
		return nil
	}
	if !ctx.CelebrateMilestone(addiction) {
		ctx.Printf("%s %s already recorded today.\n", m.Badge, m.Label)
	}
	return nil
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
