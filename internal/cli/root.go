package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/julianstephens/reboot/internal/backup"
	"github.com/julianstephens/reboot/internal/buddies"
	"github.com/julianstephens/reboot/internal/clock"
	"github.com/julianstephens/reboot/internal/constants"
	"github.com/julianstephens/reboot/internal/craving"
	"github.com/julianstephens/reboot/internal/logger"
	"github.com/julianstephens/reboot/internal/notifier"
	"github.com/julianstephens/reboot/internal/profile"
	"github.com/julianstephens/reboot/internal/storage"
	"github.com/julianstephens/reboot/internal/storage/sqlite"
	"github.com/julianstephens/reboot/internal/streak"
)

// Context carries the opened store and the domain services built on it to
// every command.
type Context struct {
	Store    storage.Provider
	Clock    clock.Clock
	Location *time.Location
	Notifier notifier.Sender

	Out io.Writer
	In  io.Reader

	Streaks  *streak.Tracker
	Cravings *craving.Log
	Recorder *craving.Recorder
	Profile  *profile.Manager
	Buddies  *buddies.List
}

func NewContext(store storage.Provider, clk clock.Clock, loc *time.Location) *Context {
	if loc == nil {
		loc = time.UTC
	}
	streaks := streak.NewTracker(store, clk, streak.WithLocation(loc))
	cravings := craving.NewLog(store, clk, craving.WithLogLocation(loc))
	return &Context{
		Store:    store,
		Clock:    clk,
		Location: loc,
		Notifier: notifier.New(),
		Out:      os.Stdout,
		In:       os.Stdin,
		Streaks:  streaks,
		Cravings: cravings,
		Recorder: craving.NewRecorder(cravings, streaks),
		Profile:  profile.NewManager(store, clk, profile.WithLocation(loc)),
		Buddies:  buddies.New(store),
	}
}

// AddictionType resolves an explicit --type flag, falling back to the
// profile's primary addiction.
func (c *Context) AddictionType(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return c.Profile.PrimaryAddictionType()
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Out, args...)
}

// BackupManager returns a backup manager for SQLite stores. Other backends
// are not file based and report false.
func (c *Context) BackupManager() (*backup.Manager, bool) {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return nil, false
	}
	return backup.NewManager(c.Store.GetConfigPath(), c.Clock), true
}

// PerformAutomaticBackup creates a backup and logs any failure.
func (c *Context) PerformAutomaticBackup() {
	mgr, ok := c.BackupManager()
	if !ok {
		logger.Debug("Skipping automatic backup", "backend", c.Store.GetConfigPath())
		return
	}
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// CelebrateMilestone records and announces today's milestone, if any. It
// reports whether a milestone was newly recorded.
func (c *Context) CelebrateMilestone(addictionType string) bool {
	m, ok := notifier.CelebrateMilestone(c.Streaks, c.Notifier, addictionType)
	if ok {
		c.Printf("%s %s reached! %s\n", m.Badge, m.Label, m.Message)
	}
	return ok
}

// DateString formats t as a calendar date in the context's time zone.
func (c *Context) DateString(t time.Time) string {
	return t.In(c.Location).Format(constants.DateFormat)
}
