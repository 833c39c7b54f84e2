// Package config loads gallery configuration.
//
// # Sources
//
// Values are layered, later sources winning:
//
//  1. Built-in defaults (public dog.ceo API, 10s timeout, info-level text logs)
//  2. ~/.config/doggallery/config.toml, or the path passed to Load
//  3. A .env file in the working directory, if present
//  4. DOGGALLERY_* environment variables (dots become underscores)
//
// A missing config file is not an error. A file that cannot be parsed is, and
// the error mentions "parse config".
//
// # File Format
//
//	[api]
//	base_url = "https://dog.ceo"
//	timeout = "10s"
//
//	[log]
//	level = "debug"
//	format = "json"
//	file = "~/.local/state/doggallery/doggallery.log"
//
// # Environment
//
//	DOGGALLERY_API_BASE_URL=http://127.0.0.1:8080
//	DOGGALLERY_API_TIMEOUT=3s
//	DOGGALLERY_LOG_LEVEL=debug
//
// Blank values fall back to defaults and "~" is expanded to the user's home
// directory, so the returned Config never needs further validation.
package config
