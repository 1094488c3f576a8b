// Package lab models the patrolled laboratory floor: a fixed rectangle of
// terrain cells plus the single guard marker found in the puzzle text.
//
// Terrain (Empty or Obstacle) and guard state (position and facing) are kept
// as separate values. A Grid is immutable once parsed; WithObstacle returns an
// independent copy, which is what the obstruction search relies on.
package lab
