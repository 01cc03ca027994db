package config

const (
	defaultVaultDir       = "~/.local/share/mediavault/vault"
	defaultDataDir        = "~/.local/share/mediavault/data"
	defaultLogDir         = "~/.local/share/mediavault/logs"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultEventListLimit = 100
	defaultMinFreeMiB     = 256
)

func defaultImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			VaultDir: defaultVaultDir,
			DataDir:  defaultDataDir,
			LogDir:   defaultLogDir,
		},
		Import: Import{
			MinFreeMiB: defaultMinFreeMiB,
		},
		Gallery: Gallery{
			ImageExtensions: defaultImageExtensions(),
			EventListLimit:  defaultEventListLimit,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
