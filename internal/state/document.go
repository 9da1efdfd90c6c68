package state

import (
	"github.com/zenhr/zenhr-backend-go/internal/domain/announcement"
	"github.com/zenhr/zenhr-backend-go/internal/domain/attendance"
	"github.com/zenhr/zenhr-backend-go/internal/domain/employee"
	"github.com/zenhr/zenhr-backend-go/internal/domain/leave"
	"github.com/zenhr/zenhr-backend-go/internal/domain/shift"
)

// Document is the full application state. It is persisted as one unit: the
// snapshot backends replace the previous content wholesale, with no partial
// update and no schema versioning.
type Document struct {
	Employees     []employee.Employee         `json:"employees"`
	Attendance    []attendance.Record         `json:"attendance"`
	Leaves        []leave.Request             `json:"leaves"`
	Shifts        []shift.Shift               `json:"shifts"`
	Policies      []leave.Policy              `json:"policies"`
	Announcements []announcement.Announcement `json:"announcements"`
}

// Empty reports whether the document carries no records at all, which is how
// a fresh backend is told apart from a hydrated one.
func (d Document) Empty() bool {
	return len(d.Employees) == 0 &&
		len(d.Attendance) == 0 &&
		len(d.Leaves) == 0 &&
		len(d.Shifts) == 0 &&
		len(d.Policies) == 0 &&
		len(d.Announcements) == 0
}
