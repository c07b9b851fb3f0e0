// Package timeline implements the pure aggregation engine behind the decision
// log and milestone views. It turns flat item and stage collections into
// (a) a two-level grouped hierarchy for the chronological log and
// (b) a stage-bucketed milestone layout with a proportional "today" marker.
//
// Every function in this package is a pure, synchronous transform: no state
// is held across calls, no I/O is performed, and identical inputs always
// produce structurally identical outputs. Wall-clock time is never read;
// "today" is an explicit parameter everywhere so callers control it.
package timeline
