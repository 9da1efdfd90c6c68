package memstore

import (
	"context"

	"github.com/zenhr/zenhr-backend-go/internal/domain/leave"
	"github.com/zenhr/zenhr-backend-go/internal/state"
)

type LeaveRequestRepository struct {
	store *state.Store
}

func NewLeaveRequestRepository(store *state.Store) *LeaveRequestRepository {
	return &LeaveRequestRepository{store: store}
}

func (r *LeaveRequestRepository) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	r.store.Write(func(doc *state.Document) {
		doc.Leaves = append([]leave.Request{req}, doc.Leaves...)
	})
	return req, nil
}

func (r *LeaveRequestRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	var (
		found leave.Request
		err   = leave.ErrRequestNotFound
	)
	r.store.Read(func(doc *state.Document) {
		for _, req := range doc.Leaves {
			if req.ID == id {
				found = req
				err = nil
				return
			}
		}
	})
	return found, err
}

func (r *LeaveRequestRepository) List(ctx context.Context) ([]leave.Request, error) {
	var out []leave.Request
	r.store.Read(func(doc *state.Document) {
		out = append(out, doc.Leaves...)
	})
	return out, nil
}

func (r *LeaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Request, error) {
	var out []leave.Request
	r.store.Read(func(doc *state.Document) {
		for _, req := range doc.Leaves {
			if req.EmployeeID == employeeID {
				out = append(out, req)
			}
		}
	})
	return out, nil
}

func (r *LeaveRequestRepository) Update(ctx context.Context, req leave.Request) error {
	err := leave.ErrRequestNotFound
	r.store.Write(func(doc *state.Document) {
		for i, existing := range doc.Leaves {
			if existing.ID == req.ID {
				doc.Leaves[i] = req
				err = nil
				return
			}
		}
	})
	return err
}

type LeavePolicyRepository struct {
	store *state.Store
}

func NewLeavePolicyRepository(store *state.Store) *LeavePolicyRepository {
	return &LeavePolicyRepository{store: store}
}

// Save upserts by id. New policies are prepended, matching the console;
// existing ones keep their position so resolution order stays stable.
func (r *LeavePolicyRepository) Save(ctx context.Context, policy leave.Policy) (leave.Policy, error) {
	r.store.Write(func(doc *state.Document) {
		for i, p := range doc.Policies {
			if p.ID == policy.ID {
				doc.Policies[i] = policy
				return
			}
		}
		doc.Policies = append([]leave.Policy{policy}, doc.Policies...)
	})
	return policy, nil
}

func (r *LeavePolicyRepository) GetByID(ctx context.Context, id string) (leave.Policy, error) {
	var (
		found leave.Policy
		err   = leave.ErrPolicyNotFound
	)
	r.store.Read(func(doc *state.Document) {
		for _, p := range doc.Policies {
			if p.ID == id {
				found = p
				err = nil
				return
			}
		}
	})
	return found, err
}

func (r *LeavePolicyRepository) List(ctx context.Context) ([]leave.Policy, error) {
	var out []leave.Policy
	r.store.Read(func(doc *state.Document) {
		out = append(out, doc.Policies...)
	})
	return out, nil
}

func (r *LeavePolicyRepository) Delete(ctx context.Context, id string) error {
	err := leave.ErrPolicyNotFound
	r.store.Write(func(doc *state.Document) {
		next := doc.Policies[:0]
		for _, p := range doc.Policies {
			if p.ID == id {
				err = nil
				continue
			}
			next = append(next, p)
		}
		doc.Policies = next
	})
	return err
}
