// Package config loads runtime configuration for the hotelctl client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected via -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-d string   path of the local session database
//	-t int      per-request timeout (seconds)
//	-l string   log level: debug, info, warn, error
//	-f string   log format: text, json, zap
//
// # File schema
//
// Timeouts use timex.Duration, so they can be strings like "10s" or integer
// nanoseconds:
//
//	api_url: http://127.0.0.1:5000/api/v1
//	db_path: hotelpanel.db
//	request_timeout: 10s
//	log_level: info
//	log_format: text
//
// Keys missing from the file keep their default.
package config
