package shift

import "context"

// Repository defines data access for roster shifts.
type Repository interface {
	// Upsert replaces any existing shift for the same (employeeID, date)
	// pair; the pair is the logical key.
	Upsert(ctx context.Context, s Shift) (Shift, error)
	List(ctx context.Context) ([]Shift, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Shift, error)
	Delete(ctx context.Context, id string) error
}
