// Package config handles loading and parsing elogviewer configuration files.
//
// # Overview
//
// This package reads a small TOML file to discover where Portage saves
// elogs and which color theme to render with. Both settings have sensible
// defaults; elogviewer works on a stock Gentoo system without any
// configuration file at all.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/elogviewer/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/elogviewer/config.toml
//   - Elog directory: $PORT_LOGDIR/elog when PORT_LOGDIR is set,
//     /var/log/portage/elog otherwise
//   - Theme: Portage
//
// # TOML Format
//
// Example config.toml:
//
//	elog_dir = "/var/log/portage/elog"
//	theme = "Nightfox"
//
// Both fields are optional. Tilde expansion is performed automatically on
// elog_dir.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// Missing config files are NOT an error - defaults are used instead.
//
// The config package is read-only and stateless - it loads configuration
// once at startup and returns an immutable Config struct. Viewer state
// such as read or important flags is never persisted here.
package config
