package attendance

import "time"

type Response struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employeeId"`
	EmployeeName string     `json:"employeeName,omitempty"`
	Date         string     `json:"date"`
	ClockIn      time.Time  `json:"clockIn"`
	ClockOut     *time.Time `json:"clockOut,omitempty"`
	Breaks       []Break    `json:"breaks"`
	TotalHours   float64    `json:"totalHours"`
	// BreakMinutes is display aggregation only; TotalHours does not
	// subtract it.
	BreakMinutes int  `json:"breakMinutes"`
	OnBreak      bool `json:"onBreak"`
	Open         bool `json:"open"`
}

func ToResponse(r Record) Response {
	breaks := r.Breaks
	if breaks == nil {
		breaks = []Break{}
	}
	return Response{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		Date:         r.Date,
		ClockIn:      r.ClockIn,
		ClockOut:     r.ClockOut,
		Breaks:       breaks,
		TotalHours:   r.TotalHours,
		BreakMinutes: r.BreakMinutes(),
		OnBreak:      r.OnBreak(),
		Open:         r.Open(),
	}
}

// Summary aggregates a set of records for the logs header.
type Summary struct {
	TotalHours   float64 `json:"totalHours"`
	DaysPresent  int     `json:"daysPresent"`
	AverageHours float64 `json:"averageHours"`
}

// Summarize totals the stored hours over distinct dates.
func Summarize(records []Record) Summary {
	days := make(map[string]struct{})
	var total float64
	for _, r := range records {
		total += r.TotalHours
		days[r.Date] = struct{}{}
	}
	s := Summary{TotalHours: total, DaysPresent: len(days)}
	if s.DaysPresent > 0 {
		s.AverageHours = total / float64(s.DaysPresent)
	}
	return s
}
