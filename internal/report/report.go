// Package report renders a printable PDF summary of recovery progress.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/julianstephens/reboot/internal/models"
)

// MaxRecentCravings bounds the craving table at the end of the report.
const MaxRecentCravings = 20

type Data struct {
	GeneratedAt time.Time
	Profile     models.Profile
	Streaks     map[string]models.StreakRecord
	Cravings    []models.CravingEntry
	Stats       models.CravingStats
	// Label maps addiction and trigger ids to display names.
	Label func(id string) string
}

type Section struct {
	Title string
	Lines []string
}

// Sections lays out the report content independent of rendering.
func Sections(d Data) []Section {
	label := d.Label
	if label == nil {
		label = func(id string) string { return id }
	}

	types := make([]string, 0, len(d.Streaks))
	for t := range d.Streaks {
		types = append(types, t)
	}
	sort.Strings(types)

	streaks := Section{Title: "Streaks"}
	milestones := Section{Title: "Milestones"}
	for _, t := range types {
		rec := d.Streaks[t]
		streaks.Lines = append(streaks.Lines, fmt.Sprintf("%s: %d days current, %d days best, %d relapses (since %s)",
			label(t), rec.CurrentStreak, rec.BestStreak, rec.TotalRelapses, rec.StartDate))
		for _, h := range rec.History {
			if h.Kind == models.HistoryMilestone {
				milestones.Lines = append(milestones.Lines, fmt.Sprintf("%s  %s: %s", h.Date, label(t), h.Note))
			}
		}
	}
	if len(streaks.Lines) == 0 {
		streaks.Lines = []string{"No streak started yet."}
	}
	if len(milestones.Lines) == 0 {
		milestones.Lines = []string{"No milestones reached yet."}
	}

	stats := Section{Title: "Cravings", Lines: []string{
		fmt.Sprintf("Total: %d", d.Stats.Total),
		fmt.Sprintf("Overcome: %d (%d%%)", d.Stats.Overcome, d.Stats.SuccessRate),
		fmt.Sprintf("Average intensity: %.1f", d.Stats.AverageIntensity),
	}}

	recent := Section{Title: "Recent cravings"}
	start := len(d.Cravings) - MaxRecentCravings
	if start < 0 {
		start = 0
	}
	for i := len(d.Cravings) - 1; i >= start; i-- {
		c := d.Cravings[i]
		outcome := "gave in"
		if c.Overcame {
			outcome = "overcame"
		}
		line := fmt.Sprintf("%s  intensity %d, %s", c.Time().Format("2006-01-02 15:04"), c.Intensity, outcome)
		if c.Trigger != "" {
			line += ", trigger: " + label(c.Trigger)
		}
		if c.Notes != "" {
			line += ", " + c.Notes
		}
		recent.Lines = append(recent.Lines, line)
	}
	if len(recent.Lines) == 0 {
		recent.Lines = []string{"No cravings logged."}
	}

	return []Section{streaks, milestones, stats, recent}
}

// Write renders the report as a PDF.
func Write(w io.Writer, d Data) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Reboot progress report", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr("Progress Report: "+d.Profile.AnonymousName))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, "Generated "+d.GeneratedAt.Format("2006-01-02 15:04 MST"))
	pdf.Ln(10)

	for _, s := range Sections(d) {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, s.Title)
		pdf.Ln(9)
		pdf.SetFont("Arial", "", 11)
		for _, line := range s.Lines {
			pdf.MultiCell(0, 6, tr(line), "", "", false)
		}
		pdf.Ln(4)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

func WriteFile(path string, d Data) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	if err := Write(f, d); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
