// Package router routes navigation proposals onto a primary stack and a modal stack.
//
// A Proposal names a destination and says how to get there: the stack verb
// (default, pop, replace, refresh, clear_all, replace_root), the context (main or
// modal) and the load action (advance, replace, restore). A Controller applies a
// proposal to its two stacks and tells a Synchronizer what became visible.
//
// # Basic Usage
//
//	nav := router.NewNavigator(router.NewVisitableScreen("/"), session, host,
//	    router.WithPathConfiguration(cfg),
//	)
//
//	nav.Route("/recipes")          // primary: [/, /recipes]
//	nav.Route("/recipes")          // same page: replaced in place
//	nav.Route("/recipes/new")      // "context: modal" rule: modal presented with [/recipes/new]
//	nav.RouteProposal(router.NewProposal("/").WithVerb(router.VerbClearAll))
//
// # Page Identity
//
// With the default verb, a screen whose destination matches the top of the target
// stack replaces it, and one matching the screen below the top pops back to it.
// Only otherwise does an advancing proposal push. Screens that carry no destination
// are compared by Identifier.
//
// # Custom Screens
//
// A Resolver decides what to show. Accept shows a VisitableScreen, AcceptCustom a
// screen of your own and Reject drops the proposal without touching the stacks:
//
//	registry := router.NewRegistry().
//	    Register("settings", func(p router.Proposal) router.Screen {
//	        return &SettingsScreen{}
//	    })
//
// Screens implementing TransientScreen (such as Alert) are presented over the
// visible stack and never enter it.
//
// # Coordinating Navigators
//
// A Coordinator holds several navigators and a Rerouter. Each proposal passes the
// Rerouter once, which may hand it to another navigator but cannot accept or
// reject it. The receiving navigator's Resolver makes that call:
//
//	c := router.NewCoordinator(main, router.RerouterFunc(
//	    func(p router.Proposal, from *router.Navigator, c *router.Coordinator) *router.Navigator {
//	        if strings.HasPrefix(p.Destination, "/admin/") {
//	            return admin
//	        }
//	        return nil
//	    }))
package router
