package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/reboot/internal/cli"
	"github.com/julianstephens/reboot/internal/constants"
	"github.com/julianstephens/reboot/internal/models"
	"github.com/julianstephens/reboot/internal/storage"
	"github.com/julianstephens/reboot/internal/utils"
)

// schemaReporter is implemented by the SQL backends.
type schemaReporter interface {
	SchemaStatus() (current, latest int, err error)
}

type DoctorCmd struct{}

type check struct {
	name     string
	run      func(*cli.Context) error
	needsDB  bool
	gatesDB  bool
	warnOnly bool
}

var checks = []check{
	{name: "Database reachable", run: checkDBReachable, gatesDB: true},
	{name: "Schema version", run: checkSchemaVersion, needsDB: true},
	{name: "Migrations complete", run: checkMigrationsComplete, needsDB: true},
	{name: "Backups present", run: checkBackupsPresent, warnOnly: true},
	{name: "Stored data", run: checkStoredData, needsDB: true},
	{name: "Streak dates", run: checkStreakDates, needsDB: true},
	{name: "Clock/timezone", run: checkClockTimezone},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	dbReachable := true
	for _, c := range checks {
		if c.needsDB && !dbReachable {
			ctx.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
			if c.gatesDB {
				dbReachable = false
			}
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	ctx.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if _, err := ctx.Store.Keys(); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	s, ok := ctx.Store.(schemaReporter)
	if !ok {
		return nil
	}
	current, latest, err := s.SchemaStatus()
	if err != nil {
		return err
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	s, ok := ctx.Store.(schemaReporter)
	if !ok {
		return nil
	}
	current, latest, err := s.SchemaStatus()
	if err != nil {
		return err
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run 'reboot migrate')", current, latest)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr, ok := ctx.BackupManager()
	if !ok {
		return nil
	}
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'reboot backup create'")
	}
	return nil
}

// checkStoredData decodes every known key into its model.
func checkStoredData(ctx *cli.Context) error {
	docs := map[string]any{
		constants.KeyProfile:    &models.Profile{},
		constants.KeyStreakData: &map[string]models.StreakRecord{},
		constants.KeyCravingLog: &[]models.CravingEntry{},
		constants.KeyBuddies:    &[]models.Buddy{},
	}
	var errs []error
	for key, v := range docs {
		if err := storage.GetJSON(ctx.Store, key, v); err != nil && !errors.Is(err, storage.ErrNotFound) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func checkStreakDates(ctx *cli.Context) error {
	var all map[string]models.StreakRecord
	if err := storage.GetJSON(ctx.Store, constants.KeyStreakData, &all); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}
	for addiction, rec := range all {
		if !utils.ValidateDate(rec.StartDate) {
			return fmt.Errorf("streak %q has invalid start date %q", addiction, rec.StartDate)
		}
		for _, h := range rec.History {
			if !utils.ValidateDate(h.Date) {
				return fmt.Errorf("streak %q has history entry with invalid date %q", addiction, h.Date)
			}
		}
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := ctx.Clock.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	if ctx.Location == nil {
		return fmt.Errorf("no time zone configured")
	}
	return nil
}
