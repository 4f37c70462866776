// Package scenario runs scripted operation sequences against fixed-capacity
// strings.
//
// A scenario names a unit width and a capacity, an optional initial text and
// a list of steps. Each step applies one container operation and may state
// the expected view, length or error code afterwards:
//
//	name: truncation
//	unit: narrow
//	capacity: 5
//	init: "hello world"
//	steps:
//	  - op: append
//	    text: "!!!"
//	    expect: {view: "hello", length: 5}
//
// Capacities are part of the Go type, so only the (unit, capacity) pairs
// instantiated in the Registry can be run. Default registers the five unit
// widths with the capacities listed in Capacities.
//
// Removal counts outside [0, length] do not panic here: the runner uses the
// error-returning variants and records OUT_OF_RANGE as the step error.
package scenario
