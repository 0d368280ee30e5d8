// Package config loads, normalizes, and validates dualpresenter configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the DUALPRESENTER_DATA_DIR
// environment override. The Config type gathers the data, preview, and
// session locations together with the presentation knobs (page size, name
// distribution, collation locale) and the visual settings that feed slide
// fingerprints.
//
// Always obtain settings through this package so downstream code receives
// expanded paths and clear validation errors.
package config
