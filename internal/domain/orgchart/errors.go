package orgchart

import "errors"

// ErrCyclicHierarchy is returned when the manager graph contains a cycle.
// Cycles are never prevented at write time; the chart builder is the one
// consumer that must detect them and degrade gracefully.
var ErrCyclicHierarchy = errors.New("manager hierarchy contains a cycle")
