// Package internal contains the shared infrastructure for the waypoint framework:
// logging and alert localization.
// Types and functions in this package are not part of the public API.
package internal
