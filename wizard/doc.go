// Package wizard drives the incident submission flow as an explicit state
// machine over seven ordered stages: setup, identity, form, generate,
// upload, submit, summary.
//
// Exactly one operation runs at a time; starting a second fails with
// ErrBusy. Failures halt the flow at the failing stage with the aggregate
// unchanged. Rewinding moves the stage pointer without mutating the
// aggregate; the next advance from the rewound stage clears everything
// downstream. Rewind and restart also invalidate any operation still in
// flight, so a result that arrives after the cut is discarded.
package wizard
