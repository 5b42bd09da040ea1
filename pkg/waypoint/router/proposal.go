package router

import (
	"maps"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
)

// StackVerb is how a proposal mutates the stacks.
type StackVerb int

const (
	VerbDefault     StackVerb = iota // Navigate: push, replace or pop depending on page identity
	VerbPop                          // Go back one screen, dismissing the modal at its root
	VerbReplace                      // Replace the top screen of the target stack in place
	VerbRefresh                      // Pop, then reload whatever stays visible
	VerbClearAll                     // Dismiss the modal and pop primary to its root
	VerbReplaceRoot                  // Dismiss the modal and make the screen the only primary entry
	VerbNone                         // Do nothing
)

var verbNames = map[StackVerb]string{
	VerbDefault:     "default",
	VerbPop:         "pop",
	VerbReplace:     "replace",
	VerbRefresh:     "refresh",
	VerbClearAll:    "clear_all",
	VerbReplaceRoot: "replace_root",
	VerbNone:        "none",
}

func (v StackVerb) String() string {
	if name, ok := verbNames[v]; ok {
		return name
	}
	return "unknown"
}

// ParseStackVerb maps a path configuration "presentation" value to a StackVerb.
// Unknown values degrade to VerbDefault.
func ParseStackVerb(s string) StackVerb {
	for verb, name := range verbNames {
		if name == s {
			return verb
		}
	}
	return VerbDefault
}

// Context selects the stack a proposal targets.
type Context int

const (
	ContextMain Context = iota
	ContextModal
)

func (c Context) String() string {
	if c == ContextModal {
		return "modal"
	}
	return "default"
}

// ParseContext maps a path configuration "context" value to a Context.
// Anything but "modal" is ContextMain.
func ParseContext(s string) Context {
	if s == "modal" {
		return ContextModal
	}
	return ContextMain
}

// LoadAction tells the session how the backing load relates to history.
type LoadAction int

const (
	ActionAdvance LoadAction = iota
	ActionReplace
	ActionRestore
)

func (a LoadAction) String() string {
	switch a {
	case ActionReplace:
		return "replace"
	case ActionRestore:
		return "restore"
	default:
		return "advance"
	}
}

// ParseLoadAction maps "advance", "replace" or "restore" to a LoadAction.
// Unknown values are ActionAdvance.
func ParseLoadAction(s string) LoadAction {
	switch s {
	case "replace":
		return ActionReplace
	case "restore":
		return ActionRestore
	default:
		return ActionAdvance
	}
}

// ModalStyle is passed to the Host when the modal stack is presented.
type ModalStyle int

const (
	ModalDefault ModalStyle = iota
	ModalFullScreen
)

func (m ModalStyle) String() string {
	if m == ModalFullScreen {
		return "full_screen"
	}
	return "default"
}

// ParseModalStyle maps "full_screen" to ModalFullScreen; everything else is ModalDefault.
func ParseModalStyle(s string) ModalStyle {
	if s == "full_screen" {
		return ModalFullScreen
	}
	return ModalDefault
}

// Properties is the keyed bag a proposal is built from, usually the merged
// properties of the path configuration rules matching its destination.
type Properties map[string]any

// String returns the value at key if it is a string.
func (p Properties) String(key string) (string, bool) {
	v, ok := p[key].(string)
	return v, ok
}

// Proposal is a request to navigate. It is a value type; the With methods
// return modified copies.
type Proposal struct {
	Destination string
	Verb        StackVerb
	Context     Context
	Action      LoadAction
	ModalStyle  ModalStyle
	Properties  Properties
}

// NewProposal returns a default, main-context, advancing proposal for destination.
func NewProposal(destination string) Proposal {
	return Proposal{Destination: destination, Action: ActionAdvance}
}

// ProposalFromProperties builds a proposal from a properties bag. The bag is copied.
func ProposalFromProperties(destination string, action LoadAction, props Properties) Proposal {
	p := Proposal{
		Destination: destination,
		Action:      action,
		Properties:  maps.Clone(props),
	}
	if v, ok := props.String(constants.PropertyPresentation); ok {
		p.Verb = ParseStackVerb(v)
	}
	if v, ok := props.String(constants.PropertyContext); ok {
		p.Context = ParseContext(v)
	}
	if v, ok := props.String(constants.PropertyModalStyle); ok {
		p.ModalStyle = ParseModalStyle(v)
	}
	return p
}

// ScreenIdentifier names the screen this proposal asks for. Without a
// view-controller property it is the default visitable screen.
func (p Proposal) ScreenIdentifier() string {
	for _, key := range constants.ScreenIdentifierKeys {
		if v, ok := p.Properties.String(key); ok && v != "" {
			return v
		}
	}
	return constants.VisitableIdentifier
}

func (p Proposal) WithVerb(v StackVerb) Proposal {
	p.Verb = v
	return p
}

func (p Proposal) WithContext(c Context) Proposal {
	p.Context = c
	return p
}

func (p Proposal) WithAction(a LoadAction) Proposal {
	p.Action = a
	return p
}
