// Package debug provides optional file-based debug logging.
//
// When the PANELS_DEBUG environment variable is set to a file path, or Init
// has been called, debug messages are appended to that file. Otherwise,
// logging is a no-op.
package debug
