package config

const (
	defaultInputDir  = "~/loopcast/in"
	defaultOutputDir = "~/loopcast/out"
	defaultLogDir    = "~/.local/share/loopcast/logs"

	defaultLogFormat = "console"
	defaultLogLevel  = "info"

	defaultTimezone = "America/New_York"

	defaultWindowToleranceMin = 30

	defaultRedditSubreddit = "electronicmusic"
)

// Default returns a Config populated with repository defaults, including the
// locked posting window table (full-length Tuesday, shorts Thursday and Sunday).
func Default() Config {
	return Config{
		Paths: Paths{
			InputDir:  defaultInputDir,
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Scheduling: Scheduling{
			Timezone: defaultTimezone,
			Windows: map[string]Window{
				"full":     {Weekday: 1, Time: "13:00", ToleranceMin: defaultWindowToleranceMin},
				"short_01": {Weekday: 3, Time: "19:00", ToleranceMin: defaultWindowToleranceMin},
				"short_02": {Weekday: 6, Time: "11:00", ToleranceMin: defaultWindowToleranceMin},
			},
		},
		Reddit: Reddit{
			DefaultSubreddit: defaultRedditSubreddit,
		},
	}
}
