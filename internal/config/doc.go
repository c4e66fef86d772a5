// Package config loads the slideshow configuration file.
//
// The file is YAML, by default at
// <user config dir>/slideshow-builder/config.yaml; the
// SLIDESHOW_CONFIG environment variable overrides the location.
package config
