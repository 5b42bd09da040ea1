package waypoint_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/session"
)

type host struct {
	router.NopHost
	presented  int
	dismissed  int
	transients []router.TransientScreen
}

func (h *host) PresentModal(router.ModalStyle) { h.presented++ }
func (h *host) DismissModal()                  { h.dismissed++ }

func (h *host) PresentTransient(s router.TransientScreen, _ router.StackKind) {
	h.transients = append(h.transients, s)
}

const pathConfiguration = `
[[rules]]
patterns = ["/new$"]
[rules.properties]
context = "modal"

[[rules]]
patterns = ["/recede_historical_location"]
[rules.properties]
presentation = "pop"
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "path-configuration.toml")
	require.NoError(t, os.WriteFile(path, []byte(pathConfiguration), 0o644))
	return path
}

func TestNewRequiresRoot(t *testing.T) {
	_, err := waypoint.New(waypoint.Options{})
	assert.ErrorIs(t, err, waypoint.ErrNoRootScreen)
}

func TestNewReportsConfigErrors(t *testing.T) {
	_, err := waypoint.New(waypoint.Options{
		Root:              router.NewVisitableScreen("/"),
		PathConfiguration: filepath.Join(t.TempDir(), "missing.json"),
	})
	require.Error(t, err)
	assert.True(t, waypoint.IsConfigError(err))
}

func TestRouteThroughPathConfiguration(t *testing.T) {
	h := &host{}
	var loaded []string
	app, err := waypoint.New(waypoint.Options{
		Root:              router.NewVisitableScreen("/"),
		PathConfiguration: writeConfig(t),
		Host:              h,
		Loader: session.LoaderFunc(func(_ context.Context, v session.Visit) ([]byte, error) {
			loaded = append(loaded, v.Destination)
			return []byte("ok"), nil
		}),
	})
	require.NoError(t, err)

	app.Route("/recipes")
	app.Route("/recipes/new")

	c := app.Controller()
	assert.True(t, c.ModalActive())
	assert.Equal(t, 1, h.presented)
	assert.Len(t, c.Primary(), 2)

	app.Route("/recede_historical_location")

	assert.False(t, c.ModalActive())
	assert.Equal(t, 1, h.dismissed)
	assert.Equal(t, []string{"/recipes", "/recipes/new"}, loaded)
	assert.EqualValues(t, 2, app.Session.Stats().Loads)
}

func TestFailedLoadPresentsRetryAlert(t *testing.T) {
	h := &host{}
	fail := true
	app, err := waypoint.New(waypoint.Options{
		Root:     router.NewVisitableScreen("/"),
		Host:     h,
		Language: "en",
		Loader: session.LoaderFunc(func(_ context.Context, v session.Visit) ([]byte, error) {
			if fail {
				return nil, errors.New("offline")
			}
			return []byte("ok"), nil
		}),
	})
	require.NoError(t, err)

	app.Route("/recipes")

	require.Len(t, h.transients, 1)
	alert, ok := h.transients[0].(*router.Alert)
	require.True(t, ok)
	assert.Equal(t, "Error loading page", alert.Title)
	assert.Len(t, app.Controller().Primary(), 2, "alerts never touch the stacks")

	fail = false
	assert.True(t, alert.Trigger("Retry"))

	_, cached := app.Session.Snapshot(router.StackMain, "/recipes")
	assert.True(t, cached)
	assert.EqualValues(t, 1, app.Session.Stats().Retries)
}
