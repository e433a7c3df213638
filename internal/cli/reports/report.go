package reports

import (
	"fmt"

	"github.com/julianstephens/reboot/internal/cli"
	"github.com/julianstephens/reboot/internal/content"
	"github.com/julianstephens/reboot/internal/report"
)

type ReportCmd struct {
	Out string `help:"Output PDF path." short:"o" default:"reboot-report.pdf" type:"path"`
}

func (c *ReportCmd) Run(ctx *cli.Context) error {
	catalog := content.Default()
	d := report.Data{
		GeneratedAt: ctx.Clock.Now().In(ctx.Location),
		Profile:     ctx.Profile.Load(),
		Streaks:     ctx.Streaks.All(),
		Cravings:    ctx.Cravings.History(),
		Stats:       ctx.Cravings.Stats(),
		Label: func(id string) string {
			if l := catalog.AddictionLabel(id); l != id {
				return l
			}
			return catalog.TriggerLabel(id)
		},
	}

	if err := report.WriteFile(c.Out, d); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	ctx.Printf("✓ Report written to %s\n", c.Out)
	return nil
}
