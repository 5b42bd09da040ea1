package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tuiKey(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func tuiApply(t *testing.T, m tuiModel, msg tea.Msg) tuiModel {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(tuiModel)
	if !ok {
		t.Fatalf("Update returned %T, want tuiModel", next)
	}
	return got
}

func tuiType(t *testing.T, m tuiModel, input string) tuiModel {
	t.Helper()
	for _, r := range input {
		m = tuiApply(t, m, tuiKey(string(r)))
	}
	return m
}

func newTestTUI(t *testing.T, pages string) tuiModel {
	t.Helper()
	c := newTestCLI(t)
	host := &tuiHost{}
	app, err := c.newApp(context.Background(), host, newLoader(pages))
	require.NoError(t, err)
	return newTUIModel(app, host, defaultTheme())
}

func TestTUIRouting(t *testing.T) {
	m := newTestTUI(t, "")

	m = tuiType(t, m, "/a")
	assert.Equal(t, "/a", m.input)
	m = tuiApply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.input)
	assert.Len(t, m.app.Controller().Primary(), 2)

	m = tuiType(t, m, "/m")
	m = tuiApply(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, m.app.Controller().ModalActive())
	assert.Contains(t, m.View(), "modal (default)")

	m = tuiApply(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.app.Controller().ModalActive())
	assert.Equal(t, []string{"presented modal (default)", "dismissed modal"}, m.host.events)
}

func TestTUIEditing(t *testing.T) {
	m := newTestTUI(t, "")

	m = tuiType(t, m, "/ab")
	m = tuiApply(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "/a", m.input)

	m = tuiApply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tuiApply(t, m, tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.Len(t, m.app.Controller().Primary(), 1)
}

func TestTUIAlert(t *testing.T) {
	m := newTestTUI(t, t.TempDir())

	m = tuiType(t, m, "/missing")
	m = tuiApply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.host.alert)
	assert.Contains(t, m.View(), "Error loading page")

	// Typing is ignored while an alert is up.
	m = tuiType(t, m, "x")
	assert.Empty(t, m.input)

	m = tuiApply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.host.alert, "the retry fails again")
	assert.EqualValues(t, 1, m.app.Session.Stats().Retries)

	m = tuiApply(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.host.alert)
	assert.Len(t, m.app.Controller().Primary(), 2, "dismissing an alert does not pop")
}

func TestTUIQuit(t *testing.T) {
	m := newTestTUI(t, "")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
