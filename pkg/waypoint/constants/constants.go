// Package constants defines shared constants and configuration values
// used throughout the waypoint navigation framework.
package constants

import "os"

// Development is the environment variable value for development mode.
const Development = "DEV"

// LogLevelEnvVar overrides the internal log level (debug, info, warn, error).
const LogLevelEnvVar = "WAYPOINT_LOG_LEVEL"

// LanguageEnvVar selects the language used for localized alerts (e.g. "es").
const LanguageEnvVar = "WAYPOINT_LANGUAGE"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Path configuration property keys read when building a proposal.
const (
	PropertyContext      = "context"
	PropertyPresentation = "presentation"
	PropertyModalStyle   = "modal"
)

// ScreenIdentifierKeys are the accepted spellings of the property naming a custom
// screen. The first one present wins.
var ScreenIdentifierKeys = []string{"view-controller", "view_controller", "viewController"}

// VisitableIdentifier is the identifier of the default destination-bearing screen.
const VisitableIdentifier = "visitable"

// AlertIdentifier is the identifier of the default transient screen.
const AlertIdentifier = "alert"

// DefaultSnapshotCacheSize is the number of page snapshots a session keeps.
const DefaultSnapshotCacheSize = 5
