package systems

import "github.com/rizkiarm/grid-universe-sub000/internal/state"

// CapturePrevPosition snapshots the current Position store into
// PrevPosition, step 1 of spec.md §4.2's fixed ordering. It must run before
// any motion system so later systems can tell which entities moved this
// step (spec.md §4.8's portal entry test).
func CapturePrevPosition(s state.State) state.State {
	s.PrevPosition = s.Position
	return s
}
