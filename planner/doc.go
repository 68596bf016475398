// Package planner runs the pick-route pipeline over an editable floor and
// holds the state a display needs between runs.
//
// Pipeline (Compute)
//
//	points of interest → distmatrix.Build → reachability check
//	  → tsp.Construct (+ TwoOpt) → route.Materialize
//
// Compute is pure: it reads the grid and returns a Plan.
//
// Session
//
// A Session owns a grid plus three pieces of display state:
//
//   - the current Plan,
//   - the display queue of segments not yet shown (Advance pops them),
//   - the held return leg, released by CommitReturn.
//
// A successful Plan clears the previous visit orders, writes the new ones,
// replaces the display queue with the outbound segments and holds the
// return leg. A failed Plan leaves every piece of state untouched.
//
// CommitReturn moves the held return leg into the display queue, but only
// once the outbound walk has been fully shown; otherwise, or when nothing
// is held, it does nothing.
//
// Editing the floor through the Session is refused with ErrBusy while
// segments are pending display. A successful edit discards the current
// plan, its visit orders and the held return leg.
//
// A Session is not safe for concurrent use; callers serialise access.
//
// Errors
//
//   - ErrNoTargets         no pick point is placed.
//   - ErrNoDepot           the depot was removed (e.g. walled over).
//   - ErrUnreachableTarget matched by *UnreachableError, which lists the
//     pick points cut off from the depot and the walls to clear.
//   - ErrBusy              an edit was attempted during display.
package planner
