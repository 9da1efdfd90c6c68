package employee

import "context"

// Repository defines data access for employee records.
type Repository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, emp Employee) error
	// UpdateAll replaces every employee in one pass. Used by the bulk quota
	// sync, which rewrites allowed counters for the whole staff at once.
	UpdateAll(ctx context.Context, emps []Employee) error
	Delete(ctx context.Context, id string) error
}
