package router

// Identity is how a candidate screen relates to the stack it is routed onto.
type Identity int

const (
	IdentityNew      Identity = iota // A page not on top or directly below it
	IdentitySame                     // The page currently on top
	IdentityPrevious                 // The page directly below the top
)

func (i Identity) String() string {
	switch i {
	case IdentitySame:
		return "same"
	case IdentityPrevious:
		return "previous"
	default:
		return "new"
	}
}

// IsSameKind reports whether two screens share an identifier.
func IsSameKind(candidate, existing Screen) bool {
	if candidate == nil || existing == nil {
		return false
	}
	return candidate.Identifier() == existing.Identifier()
}

// IsSamePage reports whether existing already shows the page candidate was
// resolved for. destination is the destination of the proposal candidate came
// from. A destination-bearing existing screen matches on destination; any other
// screen falls back to IsSameKind, so two custom screens of one kind always match.
func IsSamePage(candidate Screen, destination string, existing Screen) bool {
	if existing == nil {
		return false
	}
	if v, ok := existing.(Visitable); ok {
		return v.Destination() == destination
	}
	return IsSameKind(candidate, existing)
}

// Classify decides whether routing candidate onto stack revisits the top page,
// returns to the page below it, or goes somewhere new.
func Classify(stack *Stack, candidate Screen, destination string) Identity {
	if IsSamePage(candidate, destination, stack.Top()) {
		return IdentitySame
	}
	if stack.Len() >= 2 && IsSamePage(candidate, destination, stack.Previous()) {
		return IdentityPrevious
	}
	return IdentityNew
}
