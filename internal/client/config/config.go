package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the GroupGo client.
//
// Fields:
//   - ServerBaseURL: base URL of the GroupGo HTTP API.
//   - RequestTimeout: upper bound for a single API request.
//   - DatabasePath: SQLite file backing the durable credential tier.
//   - LogLevel: debug, info, warn or error.
//   - RedirectOnProfileError: leave protected screens when a profile fetch
//     fails for a reason other than 401.
type Config struct {
	ServerBaseURL          string
	RequestTimeout         time.Duration
	DatabasePath           string
	LogLevel               string
	RedirectOnProfileError bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "https://groupgo.onrender.com"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "groupgo.db"
	c.LogLevel = "info"
	c.RedirectOnProfileError = true
}

// LoadConfig builds a Config from defaults, then the JSON file named by -c
// or -config, then command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
