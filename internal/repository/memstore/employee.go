// Package memstore implements the domain repositories over the in-memory
// state document. Deletion is array filtering, not tombstoning; every
// mutation goes through state.Store.Write so the snapshot saver sees it.
package memstore

import (
	"context"
	"strings"

	"github.com/zenhr/zenhr-backend-go/internal/domain/employee"
	"github.com/zenhr/zenhr-backend-go/internal/state"
)

type EmployeeRepository struct {
	store *state.Store
}

func NewEmployeeRepository(store *state.Store) *EmployeeRepository {
	return &EmployeeRepository{store: store}
}

func (r *EmployeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	var err error
	r.store.Write(func(doc *state.Document) {
		for _, e := range doc.Employees {
			if strings.EqualFold(e.Email, emp.Email) {
				err = employee.ErrEmailExists
				return
			}
		}
		doc.Employees = append(doc.Employees, emp)
	})
	if err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	var (
		found employee.Employee
		err   = employee.ErrEmployeeNotFound
	)
	r.store.Read(func(doc *state.Document) {
		for _, e := range doc.Employees {
			if e.ID == id {
				found = e
				err = nil
				return
			}
		}
	})
	return found, err
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	var (
		found employee.Employee
		err   = employee.ErrEmployeeNotFound
	)
	r.store.Read(func(doc *state.Document) {
		for _, e := range doc.Employees {
			if strings.EqualFold(e.Email, email) {
				found = e
				err = nil
				return
			}
		}
	})
	return found, err
}

func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	r.store.Read(func(doc *state.Document) {
		out = append(out, doc.Employees...)
	})
	return out, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	err := employee.ErrEmployeeNotFound
	r.store.Write(func(doc *state.Document) {
		for i, e := range doc.Employees {
			if e.ID == emp.ID {
				doc.Employees[i] = emp
				err = nil
				return
			}
		}
	})
	return err
}

func (r *EmployeeRepository) UpdateAll(ctx context.Context, emps []employee.Employee) error {
	r.store.Write(func(doc *state.Document) {
		doc.Employees = append([]employee.Employee(nil), emps...)
	})
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	err := employee.ErrEmployeeNotFound
	r.store.Write(func(doc *state.Document) {
		next := doc.Employees[:0]
		for _, e := range doc.Employees {
			if e.ID == id {
				err = nil
				continue
			}
			next = append(next, e)
		}
		doc.Employees = next
	})
	return err
}
