// Package config loads runtime configuration for the GroupGo client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the GroupGo API
//	-t int      request timeout (seconds)
//	-d string   path to the local SQLite database
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Durations use timex.Duration, so "15s" and integer nanoseconds both work.
// Keys that are absent keep their earlier value:
//
//	{
//	  "server_base_url": "https://groupgo.onrender.com",
//	  "request_timeout": "15s",
//	  "database_path": "groupgo.db",
//	  "log_level": "info",
//	  "redirect_on_profile_error": true
//	}
package config
