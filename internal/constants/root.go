package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "reboot"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/reboot/reboot.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DefaultAddictionType keys the streak record when no addiction has been onboarded.
	DefaultAddictionType = "default"

	// Environment variables
	EnvConfig       = "REBOOT_CONFIG"
	EnvDBConnection = "REBOOT_DB_CONNECTION"

	// Storage keys. Each key holds one JSON document.
	KeyBuddies    = "reboot_buddies"
	KeyProfile    = "reboot_user_profile"
	KeyStreakData = "reboot_streak_data"
	KeyCravingLog = "reboot_craving_log"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "reboot-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifierLockfileName   = "reboot-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.reboot"
	TrayExecutablePrefix   = "reboot-tray"

	// Savings estimates shown on the dashboard
	MinutesSavedPerDay = 50
	DollarsSavedPerDay = 10

	// ManualResetTrigger is the relapse trigger used by the dashboard reset action.
	ManualResetTrigger = "Manual Reset"

	// DefaultCravingIntensity is logged for cravings finished from the TUI.
	DefaultCravingIntensity = 5
)

// Session States
const (
	StateDashboard SessionState = iota
	StateLessons
	StateBuddies
	StateCraving
	StateAddBuddy
	StateRelapse
	StateConfirmReset
	StateOnboarding
)
