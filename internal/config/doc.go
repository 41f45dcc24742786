// Package config loads and validates pipeline configuration.
//
// Configuration is resolved in three layers: built-in defaults, an optional
// config.yaml, and ENERGYDASH_* environment variables, with later layers
// winning. The resulting struct is validated before any component sees it.
package config
