package attendance

import "context"

// Repository defines data access for attendance records.
type Repository interface {
	Create(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	// GetOpenSession returns the open record for (employeeID, date), or
	// ErrNoOpenSession when every record for that day is closed.
	GetOpenSession(ctx context.Context, employeeID, date string) (Record, error)
	List(ctx context.Context) ([]Record, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)
	Update(ctx context.Context, rec Record) error
}
