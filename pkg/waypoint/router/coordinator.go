package router

// Rerouter decides which navigator handles a proposal. Returning nil, or from
// itself, keeps the proposal on from.
//
// A Rerouter only picks the navigator. Accepting or rejecting the proposal is
// left to that navigator's Resolver, and the chosen navigator routes it without
// consulting the Rerouter again.
type Rerouter interface {
	Reroute(p Proposal, from *Navigator, c *Coordinator) *Navigator
}

// RerouterFunc adapts a function to a Rerouter.
type RerouterFunc func(p Proposal, from *Navigator, c *Coordinator) *Navigator

func (f RerouterFunc) Reroute(p Proposal, from *Navigator, c *Coordinator) *Navigator {
	return f(p, from, c)
}

// Coordinator lets several navigators hand proposals to each other.
// It always holds at least one navigator, the root.
type Coordinator struct {
	navigators []*Navigator
	rerouter   Rerouter
}

// NewCoordinator creates a coordinator around root. rerouter may be nil.
func NewCoordinator(root *Navigator, rerouter Rerouter) *Coordinator {
	if root == nil {
		panic("router: NewCoordinator requires a root navigator")
	}
	return &Coordinator{
		navigators: []*Navigator{root},
		rerouter:   rerouter,
	}
}

// Root returns the first navigator.
func (c *Coordinator) Root() *Navigator {
	return c.navigators[0]
}

// Navigators returns every navigator, root first.
func (c *Coordinator) Navigators() []*Navigator {
	out := make([]*Navigator, len(c.navigators))
	copy(out, c.navigators)
	return out
}

// Add registers another navigator.
func (c *Coordinator) Add(n *Navigator) *Coordinator {
	if n != nil {
		c.navigators = append(c.navigators, n)
	}
	return c
}

// ReplaceRoot swaps the root navigator.
func (c *Coordinator) ReplaceRoot(n *Navigator) {
	if n != nil {
		c.navigators[0] = n
	}
}

// Route sends p to from, unless the rerouter picks another navigator. The
// rerouter runs once per call; the target's Resolver still decides whether p is shown.
func (c *Coordinator) Route(from *Navigator, p Proposal) {
	if from == nil {
		from = c.Root()
	}
	target := from
	if c.rerouter != nil {
		if to := c.rerouter.Reroute(p, from, c); to != nil {
			target = to
		}
	}
	target.RouteProposal(p)
}

// RouteDestination builds from's proposal for destination and routes it.
func (c *Coordinator) RouteDestination(from *Navigator, destination string) {
	if from == nil {
		from = c.Root()
	}
	c.Route(from, from.Proposal(destination))
}
