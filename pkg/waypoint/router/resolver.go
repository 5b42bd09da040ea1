package router

// DecisionKind is the outcome of resolving a proposal.
type DecisionKind int

const (
	DecisionAccept       DecisionKind = iota // Show the default visitable screen
	DecisionAcceptCustom                     // Show a caller-supplied screen
	DecisionReject                           // Do not route at all
)

// Decision is returned by a Resolver. Build one with Accept, AcceptCustom or Reject.
type Decision struct {
	kind   DecisionKind
	screen Screen
}

// Accept routes the default visitable screen for the proposal's destination.
func Accept() Decision {
	return Decision{kind: DecisionAccept}
}

// AcceptCustom routes screen instead of the default. A nil screen rejects.
func AcceptCustom(screen Screen) Decision {
	if screen == nil {
		return Reject()
	}
	return Decision{kind: DecisionAcceptCustom, screen: screen}
}

// Reject aborts routing: no stack changes and no session notification.
func Reject() Decision {
	return Decision{kind: DecisionReject}
}

// Kind returns the decision's outcome.
func (d Decision) Kind() DecisionKind { return d.kind }

// Screen returns the custom screen, or nil for Accept and Reject.
func (d Decision) Screen() Screen { return d.screen }

// screenFor returns the screen to route for p, or false if the decision rejects.
func (d Decision) screenFor(p Proposal) (Screen, bool) {
	switch d.kind {
	case DecisionAccept:
		return NewVisitableScreen(p.Destination), true
	case DecisionAcceptCustom:
		return d.screen, true
	default:
		return nil, false
	}
}

// Resolver decides what, if anything, to show for a proposal. It is consulted
// once per route and never sees stack state.
type Resolver interface {
	Resolve(p Proposal) Decision
}

// ResolverFunc adapts a function to a Resolver.
type ResolverFunc func(p Proposal) Decision

func (f ResolverFunc) Resolve(p Proposal) Decision { return f(p) }

// AcceptAll accepts every proposal with the default screen.
var AcceptAll Resolver = ResolverFunc(func(Proposal) Decision { return Accept() })

// ScreenFactory builds a custom screen for a proposal. Returning nil rejects it.
type ScreenFactory func(p Proposal) Screen

// Registry resolves proposals by the screen identifier in their properties
// (view-controller). Unregistered identifiers fall through to Fallback.
type Registry struct {
	factories map[string]ScreenFactory
	fallback  Resolver
}

// NewRegistry creates an empty registry that accepts unknown identifiers.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]ScreenFactory),
		fallback:  AcceptAll,
	}
}

// Register adds a factory for screens with the given identifier.
func (r *Registry) Register(identifier string, factory ScreenFactory) *Registry {
	r.factories[identifier] = factory
	return r
}

// Fallback sets the resolver used when no factory matches.
func (r *Registry) Fallback(resolver Resolver) *Registry {
	if resolver != nil {
		r.fallback = resolver
	}
	return r
}

func (r *Registry) Resolve(p Proposal) Decision {
	factory, ok := r.factories[p.ScreenIdentifier()]
	if !ok {
		return r.fallback.Resolve(p)
	}
	return AcceptCustom(factory(p))
}
