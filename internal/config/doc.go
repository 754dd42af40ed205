// Package config provides configuration loading, merging, and validation
// for the notes clients and the development API server.
//
// Configuration is assembled from multiple sources (later sources override
// earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON or YAML config file
//  3. Environment variables, after loading an optional dotenv file
//  4. Command-line flags
//
// The base URL of the notes API is resolved exactly once, here, and handed
// to the transport as a value. Entry points are [GetTUIConfig],
// [GetWebConfig] and [GetServerConfig].
package config
