// Package config provides loading, merging, and validation of the process
// configuration.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. .env file
//  3. Environment variables (INFOMILO_ prefix)
//  4. Command-line flags
//
// The main entry point is [GetStructuredConfig]. Environment profiles
// (home, office, default) are not part of this configuration; see package
// profile.
package config
