// SPDX-License-Identifier: MIT
package system

import "fmt"

// ErrUnknownProcess is returned when a process id is out of range.
var ErrUnknownProcess = fmt.Errorf("system: unknown process")

// ErrUnknownLocation is returned when a location id is out of range or
// belongs to a different process than expected.
var ErrUnknownLocation = fmt.Errorf("system: unknown location")

// ErrUnknownClock names an out-of-range clock id. No Builder or System
// method returns it.
var ErrUnknownClock = fmt.Errorf("system: unknown clock")

// ErrUnknownIntVar names an out-of-range integer-variable id. No Builder
// or System method returns it.
var ErrUnknownIntVar = fmt.Errorf("system: unknown integer variable")

// ErrUnknownEvent is returned when an event id is out of range.
var ErrUnknownEvent = fmt.Errorf("system: unknown event")

// ErrDuplicateName is returned when two processes, two clocks or two
// integer variables share a name. Events and labels are interned by
// name, so a repeated name returns the existing id instead.
var ErrDuplicateName = fmt.Errorf("system: duplicate name")

// ErrNoInitialLocation is returned at Build time when a process declares
// no initial location.
var ErrNoInitialLocation = fmt.Errorf("system: process has no initial location")

// ErrMultipleInitialLocations is returned at Build time when a process
// declares more than one initial location.
var ErrMultipleInitialLocations = fmt.Errorf("system: process has more than one initial location")

// ErrBadBounds is returned when an integer variable's min exceeds its max,
// or its initial value falls outside [min,max].
var ErrBadBounds = fmt.Errorf("system: integer variable bounds invalid")

// ErrAmbiguousSyncProcess is returned when a synchronisation names the
// same process more than once.
var ErrAmbiguousSyncProcess = fmt.Errorf("system: synchronisation names a process twice")

// ErrWeakSyncNonTrivialGuard is returned at Build time when an edge whose
// event is referenced by some synchronisation with Strength=Weak carries a
// non-empty guard, a configuration error per spec.md §4.5/§7.
var ErrWeakSyncNonTrivialGuard = fmt.Errorf("system: weakly-synchronised event has a non-trivial guard")
