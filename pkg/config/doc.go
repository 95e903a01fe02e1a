// Package config loads configuration structs from environment variables
// using `env` struct tags, with optional .env file support for local
// development.
//
// Configuration structs live next to the components they configure (see the
// email and notifier packages); this package only provides the loading
// mechanics.
package config
