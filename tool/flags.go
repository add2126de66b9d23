package tool

import "flag"

// Config holds runtime overrides from CLI flags.
type Config struct {
	Log               string
	UseConfigPath     string
	UsePort           int
	UseModel          string
	UseStrictSessions bool
}

// SetFlags parses CLI flags and returns the override config.
func SetFlags() Config {
	var cfg Config
	flag.StringVar(&cfg.Log, "log", "", "log mode: dev|prod|none")
	flag.StringVar(&cfg.UseConfigPath, "useConfigPath", "", "override config file path")
	flag.IntVar(&cfg.UsePort, "usePort", 0, "override listen port")
	flag.StringVar(&cfg.UseModel, "useModel", "", "override transcription model")
	flag.BoolVar(&cfg.UseStrictSessions, "useStrictSessions", false, "require session cookies to match the server-side token registry")
	flag.Parse()
	return cfg
}
