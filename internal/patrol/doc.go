// Package patrol simulates a guard walking the lab floor and searches for
// single obstacle placements that trap the guard in a loop.
//
// The simulator is a small state machine (see Walker). Each step either moves
// the guard one cell, turns it clockwise in front of an obstacle, or ends the
// run because the guard left the map (Exited) or revisited a
// (position, facing) state (Looping). Movement is a pure function of that
// state and the static terrain, so a repeated state proves a cycle.
//
// The obstruction search only tries cells from the baseline path: an
// obstacle anywhere else is never probed by the guard and cannot change
// the outcome.
package patrol
