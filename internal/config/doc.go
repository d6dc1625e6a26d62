// Package config provides configuration loading, merging, and validation
// for the share-favorites participant and the tube hub.
//
// Configuration is assembled from multiple sources; for every field the first
// source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetClientConfig] for a participant and
// [GetHubConfig] for the hub.
package config
