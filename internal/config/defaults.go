package config

const (
	defaultLogDir               = "~/.local/share/easyshell/logs"
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
	defaultPythonBin            = "python3"
	defaultProbeTimeoutSeconds  = 10
	defaultProbeIntervalMS      = 150
	defaultProbeDialTimeoutMS   = 250
	defaultSettingsWindowTitle  = "Easy Settings"
	defaultSettingsWindowWidth  = 480
	defaultSettingsWindowHeight = 600
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Backend: Backend{
			PythonBin: defaultPythonBin,
		},
		Probe: Probe{
			TimeoutSeconds: defaultProbeTimeoutSeconds,
			IntervalMS:     defaultProbeIntervalMS,
			DialTimeoutMS:  defaultProbeDialTimeoutMS,
		},
		SettingsWindow: SettingsWindow{
			Title:  defaultSettingsWindowTitle,
			Width:  defaultSettingsWindowWidth,
			Height: defaultSettingsWindowHeight,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
