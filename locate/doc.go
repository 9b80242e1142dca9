// Package locate acquires the rider's current coordinate.
//
// Two providers exist: one shells out to termux-location on Android devices
// running Termux, the other returns a fixed coordinate supplied through
// configuration. Both block for at most the caller's context deadline and
// never retry; a denied permission or a timed-out reading is surfaced to the
// caller as ErrUnavailable so the rider can be told what to fix.
package locate
