package memstore

import (
	"context"

	"github.com/zenhr/zenhr-backend-go/internal/domain/shift"
	"github.com/zenhr/zenhr-backend-go/internal/state"
)

type ShiftRepository struct {
	store *state.Store
}

func NewShiftRepository(store *state.Store) *ShiftRepository {
	return &ShiftRepository{store: store}
}

// Upsert drops any shift already rostered for the same (employee, date) pair
// before appending, so the pair never holds two shifts.
func (r *ShiftRepository) Upsert(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	r.store.Write(func(doc *state.Document) {
		next := doc.Shifts[:0]
		for _, existing := range doc.Shifts {
			if existing.EmployeeID == s.EmployeeID && existing.Date == s.Date {
				continue
			}
			next = append(next, existing)
		}
		doc.Shifts = append(next, s)
	})
	return s, nil
}

func (r *ShiftRepository) List(ctx context.Context) ([]shift.Shift, error) {
	var out []shift.Shift
	r.store.Read(func(doc *state.Document) {
		out = append(out, doc.Shifts...)
	})
	return out, nil
}

func (r *ShiftRepository) ListByEmployee(ctx context.Context, employeeID string) ([]shift.Shift, error) {
	var out []shift.Shift
	r.store.Read(func(doc *state.Document) {
		for _, s := range doc.Shifts {
			if s.EmployeeID == employeeID {
				out = append(out, s)
			}
		}
	})
	return out, nil
}

func (r *ShiftRepository) Delete(ctx context.Context, id string) error {
	err := shift.ErrShiftNotFound
	r.store.Write(func(doc *state.Document) {
		next := doc.Shifts[:0]
		for _, s := range doc.Shifts {
			if s.ID == id {
				err = nil
				continue
			}
			next = append(next, s)
		}
		doc.Shifts = next
	})
	return err
}
