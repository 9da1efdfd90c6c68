package memstore

import (
	"context"

	"github.com/zenhr/zenhr-backend-go/internal/domain/attendance"
	"github.com/zenhr/zenhr-backend-go/internal/state"
)

type AttendanceRepository struct {
	store *state.Store
}

func NewAttendanceRepository(store *state.Store) *AttendanceRepository {
	return &AttendanceRepository{store: store}
}

func (r *AttendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	r.store.Write(func(doc *state.Document) {
		// Newest first, the way the console prepends records.
		doc.Attendance = append([]attendance.Record{rec}, doc.Attendance...)
	})
	return rec, nil
}

func (r *AttendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	var (
		found attendance.Record
		err   = attendance.ErrRecordNotFound
	)
	r.store.Read(func(doc *state.Document) {
		for _, rec := range doc.Attendance {
			if rec.ID == id {
				found = rec
				err = nil
				return
			}
		}
	})
	return found, err
}

func (r *AttendanceRepository) GetOpenSession(ctx context.Context, employeeID, date string) (attendance.Record, error) {
	var (
		found attendance.Record
		err   = attendance.ErrNoOpenSession
	)
	r.store.Read(func(doc *state.Document) {
		for _, rec := range doc.Attendance {
			if rec.EmployeeID == employeeID && rec.Date == date && rec.Open() {
				found = rec
				err = nil
				return
			}
		}
	})
	return found, err
}

func (r *AttendanceRepository) List(ctx context.Context) ([]attendance.Record, error) {
	var out []attendance.Record
	r.store.Read(func(doc *state.Document) {
		out = append(out, doc.Attendance...)
	})
	return out, nil
}

func (r *AttendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Record, error) {
	var out []attendance.Record
	r.store.Read(func(doc *state.Document) {
		for _, rec := range doc.Attendance {
			if rec.EmployeeID == employeeID {
				out = append(out, rec)
			}
		}
	})
	return out, nil
}

func (r *AttendanceRepository) Update(ctx context.Context, rec attendance.Record) error {
	err := attendance.ErrRecordNotFound
	r.store.Write(func(doc *state.Document) {
		for i, existing := range doc.Attendance {
			if existing.ID == rec.ID {
				doc.Attendance[i] = rec
				err = nil
				return
			}
		}
	})
	return err
}
