package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/groupgo/internal/flagx"
	"github.com/dmitrijs2005/groupgo/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields tell an
// absent key from a zero value.
type JsonConfig struct {
	ServerBaseURL          string          `json:"server_base_url"`
	RequestTimeout         *timex.Duration `json:"request_timeout"`
	DatabasePath           string          `json:"database_path"`
	LogLevel               string          `json:"log_level"`
	RedirectOnProfileError *bool           `json:"redirect_on_profile_error"`
}

// parseJson overlays cfg with the file named by -c/-config, if any. Read or
// decode failures panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.RedirectOnProfileError != nil {
		cfg.RedirectOnProfileError = *jc.RedirectOnProfileError
	}
}
