// Package config loads and saves the editor's user settings.
//
// Settings are read from a single file, TOML by default or YAML when the
// path ends in .yaml or .yml, and then overridden by environment
// variables:
//
//	LIME_THEME       theme name
//	LIME_LOG_LEVEL   debug, info, warn or error
//	LIME_LOG_FILE    path of the log file
//
// A missing file is not an error; the defaults apply. The default location
// is <user config dir>/lime/config.toml:
//
//	theme = "Gruvbox (Dark)"
//
//	[editor]
//	scroll_margin = 3
//
//	[logging]
//	level = "debug"
//	file = "/tmp/lime.log"
package config
