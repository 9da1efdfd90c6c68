package leave

import "context"

// RequestRepository defines data access for leave requests.
type RequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	List(ctx context.Context) ([]Request, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Request, error)
	Update(ctx context.Context, req Request) error
}

// PolicyRepository defines data access for leave policies. Save upserts by id;
// List preserves insertion order, which the resolution fallback depends on.
type PolicyRepository interface {
	Save(ctx context.Context, policy Policy) (Policy, error)
	GetByID(ctx context.Context, id string) (Policy, error)
	List(ctx context.Context) ([]Policy, error)
	Delete(ctx context.Context, id string) error
}
