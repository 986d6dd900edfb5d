// Package config loads and validates trackopt configuration.
//
// A configuration file is TOML with an [optimize] section mirroring
// optimize.Settings and a [sample] section for evaluation defaults. Missing
// files fall back to Default, so the CLI runs without any setup.
package config
