// Package config provides user preference management for orderchat.
//
// This package manages a YAML preferences file controlling how the terminal
// UI looks and whether it logs. It never stores profile data or order ids;
// those live only for the duration of a session.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/orderchat/config.yaml or $HOME/.config/orderchat/config.yaml
//   - macOS: $HOME/.config/orderchat/config.yaml
//   - Windows: %LOCALAPPDATA%\orderchat\config.yaml
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	cfg.Theme.ChatAccent = "#ffd54f"
//	if err := cfg.Save(); err != nil {
//	    return err
//	}
//
// A missing file is not an error: Load returns Default().
package config
