// Package match ranks vehicles from one feed snapshot by great-circle
// distance from the rider.
//
// Match is a pure function of the rider coordinate, the snapshot, and the
// policy; it keeps no state and performs no I/O, so it can be exercised with
// fixed inputs and no network or device.
package match
