// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged in priority order using a builder; later sources only
// fill fields that earlier sources left at their zero value.
package config
