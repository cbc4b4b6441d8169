// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file through viper, optionally preceded by a .env file,
// and can be overridden with SCRIMHUB_* environment variables. Every section is a
// settings struct that validates itself before the application wires its dependencies.
package config
