package attendance

import "time"

// Record is one clock-in session. A record with no ClockOut is an open
// session and stays mutable; once ClockOut is set the record is final.
type Record struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employeeId"`
	Date       string     `json:"date"` // YYYY-MM-DD, local date of the clock-in
	ClockIn    time.Time  `json:"clockIn"`
	ClockOut   *time.Time `json:"clockOut,omitempty"`
	Breaks     []Break    `json:"breaks"`
	TotalHours float64    `json:"totalHours"`
}

// Break is one interval within a session. Only the most recently opened
// break is ever considered open.
type Break struct {
	Start time.Time  `json:"start"`
	End   *time.Time `json:"end,omitempty"`
}

// Open reports whether the session has not been clocked out yet.
func (r Record) Open() bool {
	return r.ClockOut == nil
}

// OnBreak reports whether the latest break is still open.
func (r Record) OnBreak() bool {
	if len(r.Breaks) == 0 {
		return false
	}
	return r.Breaks[len(r.Breaks)-1].End == nil
}

// BreakMinutes sums the closed break intervals, for display aggregation.
// The stored TotalHours never subtracts this.
func (r Record) BreakMinutes() int {
	var total time.Duration
	for _, b := range r.Breaks {
		if b.End != nil {
			total += b.End.Sub(b.Start)
		}
	}
	return int(total.Minutes())
}
