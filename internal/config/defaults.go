package config

const (
	defaultConfigPath      = "~/.config/dualpresenter/config.toml"
	defaultDataDir         = "~/.local/share/dualpresenter/data"
	defaultPreviewDir      = "~/.local/share/dualpresenter/slide-previews"
	defaultStateFile       = "~/.local/share/dualpresenter/state.toml"
	defaultLogDir          = "~/.local/share/dualpresenter/logs"
	defaultPageSize        = 20
	defaultDistributeNames = true
	defaultLocale          = "el"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultDebounceMillis  = 500

	// CardsFileName is the deck sheet export inside the data directory.
	CardsFileName = "cards.csv"
	// NamesFileName is the roster sheet export inside the data directory.
	NamesFileName = "names.csv"

	envDataDir = "DUALPRESENTER_DATA_DIR"
)

func defaultColors() map[string]string {
	return map[string]string{
		"primaryBackground":   "#1f2a44",
		"primaryText":         "#ffffff",
		"secondaryBackground": "#ffffff",
		"secondaryText":       "#1f2a44",
	}
}

func defaultFonts() map[string]string {
	return map[string]string{
		"slidesFont": "Roboto",
	}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:    defaultDataDir,
			PreviewDir: defaultPreviewDir,
			StateFile:  defaultStateFile,
			LogDir:     defaultLogDir,
		},
		Presentation: Presentation{
			PageSize:        defaultPageSize,
			DistributeNames: defaultDistributeNames,
			Locale:          defaultLocale,
		},
		Visual: Visual{
			Colors: defaultColors(),
			Fonts:  defaultFonts(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Watch: Watch{
			DebounceMillis: defaultDebounceMillis,
		},
	}
}
