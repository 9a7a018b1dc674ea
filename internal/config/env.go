package config

// Environment variables that override file settings.
const (
	EnvTheme    = "LIME_THEME"
	EnvLogLevel = "LIME_LOG_LEVEL"
	EnvLogFile  = "LIME_LOG_FILE"
)

// applyEnv overrides cfg with the environment variables that are set to a
// non-empty value.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if lookup == nil {
		return
	}
	overrides := []struct {
		env string
		dst *string
	}{
		{EnvTheme, &cfg.Theme},
		{EnvLogLevel, &cfg.Logging.Level},
		{EnvLogFile, &cfg.Logging.File},
	}
	for _, o := range overrides {
		if v, ok := lookup(o.env); ok && v != "" {
			*o.dst = v
		}
	}
}
