package router

import (
	"log/slog"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/pathconfig"
)

// Navigator is the entry point for routing by destination. It looks up the
// destination's path configuration properties, builds a proposal, asks the
// resolver for a screen and hands both to its Controller.
type Navigator struct {
	controller *Controller
	resolver   Resolver
	config     *pathconfig.Configuration
	sync       Synchronizer
	host       Host
	logger     *slog.Logger
}

// NavigatorOption configures a Navigator.
type NavigatorOption func(*Navigator)

// WithResolver sets the accept/reject policy. Nil keeps AcceptAll.
func WithResolver(r Resolver) NavigatorOption {
	return func(n *Navigator) {
		if r != nil {
			n.resolver = r
		}
	}
}

// WithPathConfiguration sets the configuration proposals are built from.
func WithPathConfiguration(cfg *pathconfig.Configuration) NavigatorOption {
	return func(n *Navigator) {
		n.config = cfg
	}
}

// NewNavigator creates a navigator and the controller it drives.
func NewNavigator(root Screen, sync Synchronizer, host Host, opts ...NavigatorOption) *Navigator {
	if sync == nil {
		sync = NopSynchronizer{}
	}
	if host == nil {
		host = NopHost{}
	}

	n := &Navigator{
		controller: NewController(root, sync, host),
		resolver:   AcceptAll,
		sync:       sync,
		host:       host,
		logger:     internal.GetInternalLogger().With("component", "navigator"),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Controller returns the hierarchy controller behind this navigator.
func (n *Navigator) Controller() *Controller {
	return n.controller
}

// PathConfiguration returns the configuration in use, possibly nil.
func (n *Navigator) PathConfiguration() *pathconfig.Configuration {
	return n.config
}

// SetPathConfiguration swaps the configuration, e.g. after fetching a newer one.
func (n *Navigator) SetPathConfiguration(cfg *pathconfig.Configuration) {
	n.config = cfg
}

// Proposal builds the advancing proposal for destination from path configuration.
func (n *Navigator) Proposal(destination string) Proposal {
	return ProposalFromProperties(destination, ActionAdvance, Properties(n.config.Properties(destination)))
}

// Route navigates to destination.
func (n *Navigator) Route(destination string) {
	n.RouteProposal(n.Proposal(destination))
}

// RouteProposal resolves p and routes the resulting screen. Rejected proposals
// change nothing.
func (n *Navigator) RouteProposal(p Proposal) {
	screen, ok := n.resolver.Resolve(p).screenFor(p)
	if !ok {
		n.logger.Debug("Proposal rejected", "destination", p.Destination)
		return
	}
	n.controller.Route(screen, p)
}

// OpenExternal asks the host to open destination over the visible stack.
func (n *Navigator) OpenExternal(destination string) {
	n.host.OpenExternal(destination, n.controller.Visible())
}

// FormSubmissionFinished is called when a form submission completes on a stack.
// A submission inside the modal invalidates what primary has cached.
func (n *Navigator) FormSubmissionFinished(on StackKind) {
	if on != StackModal {
		return
	}
	if clearer, ok := n.sync.(SnapshotClearer); ok {
		clearer.ClearSnapshotCache(StackMain)
	}
}

// VisitFailed presents a retry alert for a destination that failed to load.
func (n *Navigator) VisitFailed(destination string, on StackKind, err error, retry func()) {
	n.logger.Warn("Visit failed", "destination", destination, "stack", on, "error", err)
	n.controller.PresentTransient(NewRetryAlert(destination, err, retry))
}
