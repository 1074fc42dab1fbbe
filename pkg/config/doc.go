// Package config loads device descriptions for devmk.
//
// A description is assembled from layered sources, later ones winning:
// embedded defaults, the user config file, the description file itself
// (TOML or YAML), DEVMK_* environment variables and finally programmatic
// overrides such as command-line flags.
//
// Lists that are absent from every layer stay nil, so "absent" survives
// loading and the corresponding make block is not emitted.
package config
