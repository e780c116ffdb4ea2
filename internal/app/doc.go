// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the startup lifecycle (logger, config
// load, extension registration, status server), decoupled from any
// specific entrypoint like a CLI.
package app
