// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates CLI flags into the application's configuration, leaving output
// settings that were not given explicitly to the project manifest.
package cli
