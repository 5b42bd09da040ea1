package router

import (
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
)

// Screen is any displayable unit. Identifier is a type tag: two screens with the
// same identifier are the same kind of screen.
type Screen interface {
	Identifier() string
}

// Visitable is a screen that shows the content of a destination.
type Visitable interface {
	Screen
	Destination() string
}

// TransientScreen is alert-class content. It is presented over whichever stack is
// visible and never enters a stack.
type TransientScreen interface {
	Screen
	Transient() bool
}

// VisitableScreen is the default destination-bearing screen.
type VisitableScreen struct {
	destination string
}

// NewVisitableScreen creates the default screen for destination.
func NewVisitableScreen(destination string) *VisitableScreen {
	return &VisitableScreen{destination: destination}
}

func (s *VisitableScreen) Identifier() string  { return constants.VisitableIdentifier }
func (s *VisitableScreen) Destination() string { return s.destination }
func (s *VisitableScreen) String() string      { return s.destination }

// AlertAction is a button on an Alert.
type AlertAction struct {
	Label   string
	Handler func() // may be nil
}

// Alert is the default transient screen.
type Alert struct {
	Title   string
	Message string
	Actions []AlertAction
}

func (a *Alert) Identifier() string { return constants.AlertIdentifier }
func (a *Alert) Transient() bool    { return true }
func (a *Alert) String() string     { return a.Title }

// Trigger runs the handler of the action labelled label, if any.
func (a *Alert) Trigger(label string) bool {
	for _, action := range a.Actions {
		if action.Label == label {
			if action.Handler != nil {
				action.Handler()
			}
			return true
		}
	}
	return false
}

// NewRetryAlert builds the localized alert shown when destination fails to load.
// Choosing the retry action calls retry.
func NewRetryAlert(destination string, err error, retry func()) *Alert {
	data := map[string]any{"Destination": destination, "Error": err}
	return &Alert{
		Title:   internal.Localize(internal.MsgLoadFailedTitle, nil),
		Message: internal.Localize(internal.MsgLoadFailedMessage, data),
		Actions: []AlertAction{
			{Label: internal.Localize(internal.MsgRetryAction, nil), Handler: retry},
			{Label: internal.Localize(internal.MsgCancelAction, nil)},
		},
	}
}

func isTransient(screen Screen) (TransientScreen, bool) {
	t, ok := screen.(TransientScreen)
	return t, ok && t.Transient()
}
