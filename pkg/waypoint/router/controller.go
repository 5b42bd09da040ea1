package router

import (
	"log/slog"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
)

// Controller owns the primary and modal stacks and applies proposals to them.
//
// A Controller is not safe for concurrent use: call it from one goroutine. A Route
// issued while another is running (for example from inside a Synchronizer callback)
// is queued and runs once the current one has finished.
type Controller struct {
	primary *Stack
	modal   *Stack
	sync    Synchronizer
	host    Host
	logger  *slog.Logger

	routing *atomic.Bool
	pending []pendingRoute
}

type pendingRoute struct {
	screen    Screen
	proposal  Proposal
	transient TransientScreen
}

// NewController creates a controller whose primary stack holds root.
// A nil sync or host is replaced with a no-op. A nil root is a programming error.
func NewController(root Screen, sync Synchronizer, host Host) *Controller {
	if root == nil {
		panic("router: NewController requires a root screen")
	}
	if sync == nil {
		sync = NopSynchronizer{}
	}
	if host == nil {
		host = NopHost{}
	}
	return &Controller{
		primary: NewStack(root),
		modal:   NewStack(),
		sync:    sync,
		host:    host,
		logger:  internal.GetInternalLogger().With("component", "router"),
		routing: atomic.NewBool(false),
	}
}

// SetLogger replaces the controller's logger.
func (c *Controller) SetLogger(logger *slog.Logger) *Controller {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// Route applies proposal p using screen, which the caller has already resolved.
// Transient screens are presented over the visible stack without touching either stack.
func (c *Controller) Route(screen Screen, p Proposal) {
	c.enqueue(pendingRoute{screen: screen, proposal: p})
}

// PresentTransient shows an alert-class screen over whichever stack is visible.
// The screen always goes to the host, whatever its Transient method reports.
func (c *Controller) PresentTransient(screen TransientScreen) {
	if screen == nil {
		c.logger.Warn("Ignoring nil transient screen")
		return
	}
	c.enqueue(pendingRoute{transient: screen})
}

// enqueue runs next, or queues it behind the route currently being applied.
// The queue is dropped if a host or sync callback panics.
func (c *Controller) enqueue(next pendingRoute) {
	c.pending = append(c.pending, next)
	if !c.routing.CompareAndSwap(false, true) {
		c.logger.Debug("Queued re-entrant route", "destination", next.proposal.Destination)
		return
	}
	defer func() {
		c.pending = nil
		c.routing.Store(false)
	}()

	for len(c.pending) > 0 {
		item := c.pending[0]
		c.pending[0] = pendingRoute{}
		c.pending = c.pending[1:]
		if item.transient != nil {
			c.presentTransient(item.transient)
			continue
		}
		c.route(item.screen, item.proposal)
	}
}

func (c *Controller) presentTransient(alert TransientScreen) {
	c.logger.Debug("Presenting transient screen", "identifier", alert.Identifier(), "on", c.Visible())
	c.host.PresentTransient(alert, c.Visible())
}

// ModalActive reports whether the modal stack is presented over primary.
func (c *Controller) ModalActive() bool {
	return !c.modal.IsEmpty()
}

// Visible returns the stack the user currently sees.
func (c *Controller) Visible() StackKind {
	if c.ModalActive() {
		return StackModal
	}
	return StackMain
}

// Primary returns a copy of the primary stack, root first.
func (c *Controller) Primary() []Screen {
	return c.primary.Screens()
}

// Modal returns a copy of the modal stack; empty while the modal is inactive.
func (c *Controller) Modal() []Screen {
	return c.modal.Screens()
}

// Top returns the top screen of the given stack, or nil if it is empty.
func (c *Controller) Top(on StackKind) Screen {
	return c.stack(on).Top()
}

func (c *Controller) stack(kind StackKind) *Stack {
	if kind == StackModal {
		return c.modal
	}
	return c.primary
}

func (c *Controller) route(screen Screen, p Proposal) {
	if alert, ok := isTransient(screen); ok {
		c.presentTransient(alert)
		return
	}

	c.logger.Debug("Routing proposal",
		"destination", p.Destination,
		"verb", p.Verb,
		"context", p.Context,
		"action", p.Action,
	)

	switch p.Verb {
	case VerbDefault:
		c.navigate(screen, p)
	case VerbPop:
		c.pop()
	case VerbReplace:
		c.replace(screen, p)
	case VerbRefresh:
		c.refresh()
	case VerbClearAll:
		c.clearAll()
	case VerbReplaceRoot:
		c.replaceRoot(screen)
	case VerbNone:
	}
}

func (c *Controller) navigate(screen Screen, p Proposal) {
	if screen == nil {
		c.logger.Error("Ignoring navigation without a screen", "destination", p.Destination)
		return
	}

	switch p.Context {
	case ContextModal:
		if c.ModalActive() {
			c.pushOrReplace(c.modal, screen, p)
		} else {
			c.activateModal(screen, p.ModalStyle)
		}
		c.sync.Visit(screen, StackModal, p.Action)
	default:
		c.deactivateModal()
		c.pushOrReplace(c.primary, screen, p)
		c.sync.Visit(screen, StackMain, p.Action)
	}
}

func (c *Controller) pushOrReplace(stack *Stack, screen Screen, p Proposal) {
	switch Classify(stack, screen, p.Destination) {
	case IdentitySame:
		stack.ReplaceTop(screen)
	case IdentityPrevious:
		stack.Pop()
	default:
		if p.Action == ActionAdvance {
			stack.Push(screen)
		} else {
			stack.ReplaceTop(screen)
		}
	}
}

func (c *Controller) replace(screen Screen, p Proposal) {
	if screen == nil {
		c.logger.Error("Ignoring replace without a screen", "destination", p.Destination)
		return
	}

	switch p.Context {
	case ContextModal:
		if c.ModalActive() {
			c.modal.ReplaceTop(screen)
		} else {
			c.activateModal(screen, p.ModalStyle)
		}
		c.sync.Visit(screen, StackModal, p.Action)
	default:
		c.deactivateModal()
		c.primary.ReplaceTop(screen)
		c.sync.Visit(screen, StackMain, p.Action)
	}
}

// pop goes back one screen and returns the stack left visible.
func (c *Controller) pop() StackKind {
	if c.ModalActive() {
		if c.modal.Len() > 1 {
			c.modal.Pop()
			return StackModal
		}
		c.deactivateModal()
		return StackMain
	}

	// The root screen is never popped.
	if c.primary.Len() > 1 {
		c.primary.Pop()
	}
	return StackMain
}

func (c *Controller) refresh() {
	c.sync.Reload(c.pop())
}

func (c *Controller) clearAll() {
	c.deactivateModal()
	c.primary.PopToRoot()
	c.sync.Reload(StackMain)
}

func (c *Controller) replaceRoot(screen Screen) {
	if screen == nil {
		c.logger.Error("Ignoring replace_root without a screen")
		return
	}
	c.deactivateModal()
	c.primary.Reset(screen)
	c.sync.Visit(screen, StackMain, ActionReplace)
}

func (c *Controller) activateModal(screen Screen, style ModalStyle) {
	c.modal.Reset(screen)
	c.host.PresentModal(style)
}

func (c *Controller) deactivateModal() {
	if !c.ModalActive() {
		return
	}
	c.modal.Clear()
	c.host.DismissModal()
}
