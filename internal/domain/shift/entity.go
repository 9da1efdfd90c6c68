package shift

// Type tags a rostered day. Start/end labels are derived from the tag, not
// chosen freely.
type Type string

const (
	TypeFullDay Type = "Full Day"
	TypeHalfDay Type = "Half Day"
	TypeLeave   Type = "Leave"
	TypeOff     Type = "Off"
)

// Valid reports whether t is a known shift type.
func (t Type) Valid() bool {
	switch t {
	case TypeFullDay, TypeHalfDay, TypeLeave, TypeOff:
		return true
	}
	return false
}

// Hours returns the display labels for a shift type.
func (t Type) Hours() (start, end string) {
	switch t {
	case TypeFullDay:
		return "09:00", "18:00"
	case TypeHalfDay:
		return "09:00", "13:00"
	case TypeLeave:
		return "Rest", "Day"
	default:
		return "-", "-"
	}
}

// Shift is one roster cell. At most one shift exists per (employee, date);
// assigning again replaces the previous one.
type Shift struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"` // YYYY-MM-DD
	Type       Type   `json:"type"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}
