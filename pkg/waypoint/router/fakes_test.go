package router

type visitCall struct {
	screen Screen
	stack  StackKind
	action LoadAction
}

type recordingSync struct {
	visits  []visitCall
	reloads []StackKind
	cleared []StackKind

	onVisit func(screen Screen, on StackKind)
}

func (s *recordingSync) Visit(screen Screen, on StackKind, action LoadAction) {
	s.visits = append(s.visits, visitCall{screen: screen, stack: on, action: action})
	if s.onVisit != nil {
		s.onVisit(screen, on)
	}
}

func (s *recordingSync) Reload(on StackKind) {
	s.reloads = append(s.reloads, on)
}

func (s *recordingSync) ClearSnapshotCache(on StackKind) {
	s.cleared = append(s.cleared, on)
}

type transientCall struct {
	screen TransientScreen
	stack  StackKind
}

type externalCall struct {
	destination string
	stack       StackKind
}

type recordingHost struct {
	presented  []ModalStyle
	dismissed  int
	transients []transientCall
	external   []externalCall
}

func (h *recordingHost) PresentModal(style ModalStyle) {
	h.presented = append(h.presented, style)
}

func (h *recordingHost) DismissModal() {
	h.dismissed++
}

func (h *recordingHost) PresentTransient(screen TransientScreen, on StackKind) {
	h.transients = append(h.transients, transientCall{screen: screen, stack: on})
}

func (h *recordingHost) OpenExternal(destination string, on StackKind) {
	h.external = append(h.external, externalCall{destination: destination, stack: on})
}

// nativeScreen is a custom screen with no destination.
type nativeScreen struct {
	id   string
	name string
}

func (s *nativeScreen) Identifier() string { return s.id }

// sheetScreen is a custom transient screen that may decline to be transient.
type sheetScreen struct {
	id        string
	transient bool
}

func (s *sheetScreen) Identifier() string { return s.id }
func (s *sheetScreen) Transient() bool    { return s.transient }

func newTestController() (*Controller, *recordingSync, *recordingHost) {
	sync := &recordingSync{}
	host := &recordingHost{}
	return NewController(NewVisitableScreen("/"), sync, host), sync, host
}

// names lists destinations, or identifiers for screens without one.
func names(screens []Screen) []string {
	out := make([]string, 0, len(screens))
	for _, s := range screens {
		if v, ok := s.(Visitable); ok {
			out = append(out, v.Destination())
		} else {
			out = append(out, s.Identifier())
		}
	}
	return out
}

// visit routes the default screen for p, as the navigator would after Accept.
func visit(c *Controller, p Proposal) {
	c.Route(NewVisitableScreen(p.Destination), p)
}
