// Package app contains the core application logic: resolving the project
// configuration, collecting and parsing board sources, and writing the
// requested report. It is decoupled from any specific entrypoint.
package app
