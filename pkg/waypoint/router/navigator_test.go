package router

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/pathconfig"
)

func testConfiguration(t *testing.T) *pathconfig.Configuration {
	t.Helper()
	cfg, err := pathconfig.New(
		pathconfig.Rule{Patterns: []string{"/recede_historical_location"}, Properties: map[string]any{"presentation": "pop"}},
		pathconfig.Rule{Patterns: []string{"/refresh_historical_location"}, Properties: map[string]any{"presentation": "refresh"}},
		pathconfig.Rule{Patterns: []string{"/resume_historical_location"}, Properties: map[string]any{"presentation": "none"}},
		pathconfig.Rule{Patterns: []string{"/new$", "/edit$"}, Properties: map[string]any{"context": "modal"}},
		pathconfig.Rule{Patterns: []string{"^/$"}, Properties: map[string]any{"presentation": "clear_all"}},
		pathconfig.Rule{Patterns: []string{"^/settings"}, Properties: map[string]any{"view-controller": "settings"}},
	)
	require.NoError(t, err)
	return cfg
}

func newTestNavigator(t *testing.T, opts ...NavigatorOption) (*Navigator, *recordingSync, *recordingHost) {
	t.Helper()
	sync := &recordingSync{}
	host := &recordingHost{}
	opts = append([]NavigatorOption{WithPathConfiguration(testConfiguration(t))}, opts...)
	return NewNavigator(NewVisitableScreen("https://example.com/"), sync, host, opts...), sync, host
}

func TestNavigatorRoutesByPathConfiguration(t *testing.T) {
	nav, sync, host := newTestNavigator(t)
	c := nav.Controller()

	nav.Route("https://example.com/recipes")
	assert.Equal(t, []string{"https://example.com/", "https://example.com/recipes"}, names(c.Primary()))

	nav.Route("https://example.com/recipes/new")
	require.True(t, c.ModalActive())
	assert.Equal(t, []string{"https://example.com/recipes/new"}, names(c.Modal()))

	nav.Route("https://example.com/resume_historical_location")
	assert.True(t, c.ModalActive())

	nav.Route("https://example.com/recede_historical_location")
	assert.False(t, c.ModalActive())
	assert.Equal(t, 1, host.dismissed)

	nav.Route("https://example.com/refresh_historical_location")
	assert.Equal(t, []string{"https://example.com/"}, names(c.Primary()))
	assert.Equal(t, []StackKind{StackMain}, sync.reloads)

	nav.Route("https://example.com/recipes")
	nav.Route("https://example.com/")
	assert.Equal(t, []string{"https://example.com/"}, names(c.Primary()))
	assert.Equal(t, []StackKind{StackMain, StackMain}, sync.reloads)
}

func TestNavigatorWithoutConfiguration(t *testing.T) {
	nav := NewNavigator(NewVisitableScreen("/"), nil, nil)

	nav.Route("/a/new")

	assert.False(t, nav.Controller().ModalActive())
	assert.Equal(t, []string{"/", "/a/new"}, names(nav.Controller().Primary()))
}

func TestNavigatorRejectedProposal(t *testing.T) {
	reject := ResolverFunc(func(p Proposal) Decision {
		if p.Destination == "https://example.com/blocked" {
			return Reject()
		}
		return Accept()
	})
	nav, sync, host := newTestNavigator(t, WithResolver(reject))

	nav.Route("https://example.com/blocked")

	assert.Equal(t, []string{"https://example.com/"}, names(nav.Controller().Primary()))
	assert.Empty(t, sync.visits)
	assert.Empty(t, host.presented)
}

func TestNavigatorRegistry(t *testing.T) {
	registry := NewRegistry().
		Register("settings", func(p Proposal) Screen { return &nativeScreen{id: "settings", name: p.Destination} }).
		Register("hidden", func(Proposal) Screen { return nil })
	nav, sync, _ := newTestNavigator(t, WithResolver(registry))

	nav.Route("https://example.com/settings")
	nav.Route("https://example.com/settings/notifications")

	assert.Equal(t, []string{"https://example.com/", "settings"}, names(nav.Controller().Primary()))
	require.Len(t, sync.visits, 2)

	hidden := NewProposal("/hidden")
	hidden.Properties = Properties{"viewController": "hidden"}
	nav.RouteProposal(hidden)
	assert.Len(t, sync.visits, 2)
}

func TestNavigatorOpenExternal(t *testing.T) {
	nav, _, host := newTestNavigator(t)

	nav.OpenExternal("https://other.example.org")
	nav.Route("https://example.com/recipes/new")
	nav.OpenExternal("mailto:someone@example.com")

	assert.Equal(t, []externalCall{
		{destination: "https://other.example.org", stack: StackMain},
		{destination: "mailto:someone@example.com", stack: StackModal},
	}, host.external)
}

func TestNavigatorFormSubmissionFinished(t *testing.T) {
	nav, sync, _ := newTestNavigator(t)

	nav.FormSubmissionFinished(StackMain)
	assert.Empty(t, sync.cleared)

	nav.FormSubmissionFinished(StackModal)
	assert.Equal(t, []StackKind{StackMain}, sync.cleared)
}

func TestNavigatorVisitFailedPresentsRetryAlert(t *testing.T) {
	nav, _, host := newTestNavigator(t)
	retried := 0

	nav.VisitFailed("https://example.com/a", StackMain, errors.New("timeout"), func() { retried++ })

	require.Len(t, host.transients, 1)
	alert, ok := host.transients[0].screen.(*Alert)
	require.True(t, ok)
	assert.Equal(t, "Error loading page", alert.Title)
	assert.Contains(t, alert.Message, "https://example.com/a")
	assert.Contains(t, alert.Message, "timeout")
	require.Len(t, alert.Actions, 2)

	assert.True(t, alert.Trigger("Retry"))
	assert.Equal(t, 1, retried)
	assert.True(t, alert.Trigger("Cancel"))
	assert.Equal(t, 1, retried)
	assert.False(t, alert.Trigger("Ignore"))
}
