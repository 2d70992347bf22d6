// Package config loads, normalizes, and validates the loopcast TOML
// configuration. The locked posting window table lives here as plain
// configuration data; the scheduling package turns it into an immutable
// runtime table at startup.
package config
