package constants

import "time"

const (
	AppName            = "nyfont"
	ExtensionID        = "Ny-font-manager"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/nyfont/nyfont.db"
	Version            = "v0.3.0"

	// EnvDBConnection overrides the keyring entry when --config is "keyring".
	EnvDBConnection = "NYFONT_DB_CONNECTION"

	// KeyringConfigValue selects the PostgreSQL store with credentials from the OS keyring.
	KeyringConfigValue = "keyring"

	// SaveDebounce matches the settings panel's input debounce.
	SaveDebounce = 200 * time.Millisecond

	// Storage
	SettingsTable  = "settings"
	JSONFileSuffix = ".json"
	PostgresSchema = AppName
	LogDirName     = "logs"
	LogFileName    = "nyfont.log"
	FontIDPrefix   = "font_"
	LocaleIDPrefix = "locale_"
	PresetIDPrefix = "preset_"
)
