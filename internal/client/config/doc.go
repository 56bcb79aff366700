// Package config loads runtime configuration for the EcoTracker CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c/-config or ECOTRACKER_CONFIG.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-d string   path of the local SQLite session database
//	-t int      per-request timeout (seconds)
//	-o string   directory exported reports are downloaded into
//
// # JSON schema
//
// Durations use timex.Duration, so "10s" and integer nanoseconds both work:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "database_file": "ecotracker.db",
//	  "request_timeout": "10s",
//	  "download_dir": "reports"
//	}
package config
