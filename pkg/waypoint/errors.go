package waypoint

import (
	"errors"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/pathconfig"
)

// ErrNoRootScreen is returned by New when Options carries no root screen.
var ErrNoRootScreen = errors.New("waypoint: no root screen")

// IsConfigError checks if an error came from loading or fetching path configuration.
func IsConfigError(err error) bool {
	return pathconfig.IsConfigError(err)
}
