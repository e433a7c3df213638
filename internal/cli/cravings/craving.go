package cravings

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/reboot/internal/cli"
	"github.com/julianstephens/reboot/internal/content"
	apperrors "github.com/julianstephens/reboot/internal/errors"
	"github.com/julianstephens/reboot/internal/models"
	"github.com/julianstephens/reboot/internal/tui"
)

type CravingCmd struct {
	Sos     SosCmd     `cmd:"" help:"Start the guided craving intervention."`
	Log     LogCmd     `cmd:"" help:"Log a craving after the fact."`
	History HistoryCmd `cmd:"" help:"List logged cravings."`
	Stats   StatsCmd   `cmd:"" help:"Show craving statistics."`
}

type SosCmd struct{}

func (c *SosCmd) Run(ctx *cli.Context) error {
	p := tea.NewProgram(tui.NewCravingModel(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("craving session exited with error: %w", err)
	}
	return nil
}

type LogCmd struct {
	Intensity int    `help:"Craving intensity from 1 to 10." default:"5" short:"i"`
	Trigger   string `help:"Trigger id or description." short:"r"`
	Overcame  bool   `help:"You rode out the craving." negatable:""`
	Technique string `help:"What helped."`
	Notes     string `help:"Free-form notes." short:"n"`
	Type      string `help:"Addiction type. Defaults to the onboarded addiction." short:"t"`
}

func (c *LogCmd) Validate() error {
	if c.Intensity < 1 || c.Intensity > 10 {
		return apperrors.Invalid("intensity", "must be between 1 and 10, got %d", c.Intensity)
	}
	return nil
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	entry := ctx.Recorder.Record(ctx.AddictionType(c.Type), models.CravingEntry{
		Intensity: c.Intensity,
		Trigger:   c.Trigger,
		Overcame:  c.Overcame,
		Technique: c.Technique,
		Notes:     c.Notes,
	})
	if entry.Overcame {
		ctx.Println("✓ Craving logged. You rode the wave.")
	} else {
		ctx.Println("Craving logged and streak reset. Be kind to yourself; tomorrow is a fresh start.")
	}
	return nil
}

type HistoryCmd struct {
	Limit int  `help:"Show at most this many entries, newest first." default:"20"`
	Today bool `help:"Only show today's cravings."`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	entries := ctx.Cravings.History()
	if c.Today {
		entries = ctx.Cravings.Today()
	}
	if len(entries) == 0 {
		ctx.Println("No cravings logged.")
		return nil
	}

	catalog := content.Default()
	shown := 0
	for i := len(entries) - 1; i >= 0 && (c.Limit <= 0 || shown < c.Limit); i-- {
		e := entries[i]
		mark := "✗"
		if e.Overcame {
			mark = "✓"
		}
		line := fmt.Sprintf("%s %s  intensity %2d", mark, ctx.DateString(e.Time())+" "+e.Time().In(ctx.Location).Format("15:04"), e.Intensity)
		if e.Trigger != "" {
			line += "  " + catalog.TriggerLabel(e.Trigger)
		}
		if e.Notes != "" {
			line += "  " + e.Notes
		}
		ctx.Println(line)
		shown++
	}
	return nil
}

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	stats := ctx.Cravings.Stats()
	today := ctx.Cravings.Today()
	overcomeToday := 0
	for _, e := range today {
		if e.Overcame {
			overcomeToday++
		}
	}

	ctx.Printf("Total cravings:     %d\n", stats.Total)
	ctx.Printf("Overcome:           %d (%d%%)\n", stats.Overcome, stats.SuccessRate)
	ctx.Printf("Average intensity:  %.1f\n", stats.AverageIntensity)
	ctx.Printf("Overcome today:     %d of %d\n", overcomeToday, len(today))
	return nil
}
