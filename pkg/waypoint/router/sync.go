package router

// StackKind names one of the two stacks.
type StackKind int

const (
	StackMain StackKind = iota
	StackModal
)

func (k StackKind) String() string {
	if k == StackModal {
		return "modal"
	}
	return "main"
}

// Synchronizer keeps a content-loading session in step with the stacks.
// The controller never reads load state back.
type Synchronizer interface {
	// Visit is called after every push, replace or navigate.
	Visit(screen Screen, on StackKind, action LoadAction)

	// Reload is called on every refresh and clear-all.
	Reload(on StackKind)
}

// SnapshotClearer is implemented by synchronizers that cache rendered pages.
type SnapshotClearer interface {
	ClearSnapshotCache(on StackKind)
}

// Host is the environment the stacks are displayed in.
type Host interface {
	// PresentModal shows the modal stack's container over the primary stack.
	PresentModal(style ModalStyle)

	// DismissModal hides the modal container.
	DismissModal()

	// PresentTransient shows alert-class content over the given stack.
	PresentTransient(screen TransientScreen, on StackKind)

	// OpenExternal opens a destination the app does not handle itself.
	OpenExternal(destination string, on StackKind)
}

// TopSource exposes the top screen of each stack.
type TopSource interface {
	Top(on StackKind) Screen
}

// NopSynchronizer ignores all notifications.
type NopSynchronizer struct{}

func (NopSynchronizer) Visit(Screen, StackKind, LoadAction) {}
func (NopSynchronizer) Reload(StackKind)                    {}

// NopHost ignores all presentation requests.
type NopHost struct{}

func (NopHost) PresentModal(ModalStyle)                     {}
func (NopHost) DismissModal()                               {}
func (NopHost) PresentTransient(TransientScreen, StackKind) {}
func (NopHost) OpenExternal(string, StackKind)              {}
