package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/reboot/internal/cli"
	"github.com/julianstephens/reboot/internal/cli/backups"
	"github.com/julianstephens/reboot/internal/cli/buddies"
	"github.com/julianstephens/reboot/internal/cli/cravings"
	"github.com/julianstephens/reboot/internal/cli/lessons"
	"github.com/julianstephens/reboot/internal/cli/profiles"
	"github.com/julianstephens/reboot/internal/cli/reports"
	"github.com/julianstephens/reboot/internal/cli/streaks"
	"github.com/julianstephens/reboot/internal/cli/system"
	"github.com/julianstephens/reboot/internal/clock"
	"github.com/julianstephens/reboot/internal/constants"
	apperrors "github.com/julianstephens/reboot/internal/errors"
	"github.com/julianstephens/reboot/internal/keyring"
	"github.com/julianstephens/reboot/internal/logger"
	"github.com/julianstephens/reboot/internal/storage"
	"github.com/julianstephens/reboot/internal/utils"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Database file (.db), JSON file (.json) or PostgreSQL connection string. PostgreSQL credentials must NOT be embedded; use REBOOT_DB_CONNECTION or the OS keyring instead." default:"${config}"`
	Timezone string `help:"IANA time zone used for day boundaries." default:"UTC"`
	Debug    bool   `help:"Enable debug logging."`

	Init     system.InitCmd      `cmd:"" help:"Initialize reboot storage."`
	Migrate  system.MigrateCmd   `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd    `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd       `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Onboard  profiles.OnboardCmd `cmd:"" help:"Set up your profile and start your first streak."`
	Profile  profiles.ProfileCmd `cmd:"" help:"Show or reset your profile."`
	Streak   streaks.StreakCmd   `cmd:"" help:"Show and manage streaks."`
	Craving  cravings.CravingCmd `cmd:"" help:"Get through a craving and review past ones."`
	Buddy    buddies.BuddyCmd    `cmd:"" help:"Manage accountability buddies."`
	Lessons  lessons.LessonsCmd  `cmd:"" help:"Browse recovery lessons."`
	Backup   backups.BackupCmd   `cmd:"" help:"Manage database backups."`
	Report   reports.ReportCmd   `cmd:"" help:"Export a PDF progress report."`
	Keyring  system.KeyringCmd   `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	Debugger system.DebugCmd     `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
	Notify   system.NotifyCmd    `cmd:"" hidden:"" help:"Send milestone notifications (used internally)."`
}

func main() {
	// A missing .env file is the common case.
	_ = godotenv.Load()

	configDefault := constants.DefaultConfigPath
	if v := os.Getenv(constants.EnvConfig); v != "" {
		configDefault = v
	}

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Break a habit one day at a time: streaks, craving support and accountability."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version, "config": configDefault},
	)

	logDir, err := cli.ExpandHome(filepath.Dir(constants.DefaultConfigPath))
	if err != nil {
		apperrors.Fatal(err)
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: logDir}); err != nil {
		apperrors.Fatal(err)
	}

	loc, err := utils.LoadLocation(CLI.Timezone)
	if err != nil {
		apperrors.Fatal(err)
	}

	store, err := openStore(CLI.Config)
	if err != nil {
		apperrors.Fatal(err)
	}
	defer store.Close()

	command := ""
	if fields := strings.Fields(ctx.Command()); len(fields) > 0 {
		command = fields[0]
	}
	switch command {
	case "init", "doctor", "keyring":
		// These open the store themselves or do not need it.
	case "migrate":
		if err := store.Load(); err != nil {
			logger.Debug("Loading store before migration", "error", err)
		}
	default:
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}

	appCtx := cli.NewContext(store, clock.New(), loc)
	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}

// openStore prefers a connection string from the environment or the OS
// keyring when --config was left at the default database path.
func openStore(config string) (storage.Provider, error) {
	if config != constants.DefaultConfigPath {
		return cli.OpenStore(config)
	}
	if dsn := os.Getenv(constants.EnvDBConnection); dsn != "" {
		logger.Debug("Using connection string from environment")
		return cli.OpenSecretStore(dsn)
	}
	dsn, err := keyring.GetConnectionString()
	switch {
	case err == nil:
		logger.Debug("Using connection string from OS keyring")
		return cli.OpenSecretStore(dsn)
	case !errors.Is(err, keyring.ErrNotFound):
		logger.Debug("OS keyring unavailable", "error", err)
	}
	return cli.OpenStore(config)
}
