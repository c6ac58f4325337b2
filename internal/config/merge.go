package config

// Overrides holds command-line values that take precedence over the file.
// Zero values leave the file setting untouched.
type Overrides struct {
	Host       string
	Port       int
	Name       string
	LogLevel   string
	JournalDir string
}

// Merge returns a copy of cfg with the non-empty overrides applied.
func Merge(cfg *Config, o Overrides) *Config {
	merged := *cfg

	merged.Server.Host = coalesce(o.Host, cfg.Server.Host)
	if o.Port != 0 {
		merged.Server.Port = o.Port
	}

	merged.Responder.Name = coalesce(o.Name, cfg.Responder.Name)
	merged.Logging.Level = coalesce(o.LogLevel, cfg.Logging.Level)
	merged.Logging.JournalDir = coalesce(o.JournalDir, cfg.Logging.JournalDir)

	return &merged
}

func coalesce(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
