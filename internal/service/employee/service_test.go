package employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/zenhr/zenhr-backend-go/internal/domain/employee"
	"github.com/zenhr/zenhr-backend-go/internal/repository/memstore"
	"github.com/zenhr/zenhr-backend-go/internal/state"
)

func newTestService(t *testing.T) (*Service, *state.Store) {
	t.Helper()
	store := state.NewStore()
	return NewService(memstore.NewEmployeeRepository(store)), store
}

func TestCreateHashesPassword(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	resp, err := svc.Create(ctx, employee.CreateRequest{
		Name:     "New Hire",
		Email:    "new@zenhr.test",
		Password: "s3cret",
		Salary:   90000,
	})
	require.NoError(t, err)
	assert.Equal(t, employee.StatusActive, resp.Status, "status defaults to Active")
	assert.Equal(t, employee.RoleEmployee, resp.UserRole, "access role defaults to Employee")
	assert.NotEmpty(t, resp.JoinDate)

	var stored employee.Employee
	store.Read(func(doc *state.Document) { stored = doc.Employees[0] })
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")))
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Create(ctx, employee.CreateRequest{
		Name: "A", Email: "dup@zenhr.test", Password: "pw",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, employee.CreateRequest{
		Name: "B", Email: "DUP@zenhr.test", Password: "pw",
	})
	assert.ErrorIs(t, err, employee.ErrEmailExists, "email comparison is case-insensitive")
}

func TestUpdatePatchesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	created, err := svc.Create(ctx, employee.CreateRequest{
		Name: "Original", Email: "orig@zenhr.test", Password: "pw",
		Role: "Engineer", Department: "Engineering",
	})
	require.NoError(t, err)

	newName := "Renamed"
	updated, err := svc.Update(ctx, employee.UpdateRequest{
		ID:   created.ID,
		Name: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "Engineer", updated.Role, "unset fields keep their value")

	// Password change re-hashes; an explicit empty manager clears it.
	var before employee.Employee
	store.Read(func(doc *state.Document) { before = doc.Employees[0] })

	newPassword := "changed"
	emptyManager := ""
	_, err = svc.Update(ctx, employee.UpdateRequest{
		ID:        created.ID,
		Password:  &newPassword,
		ManagerID: &emptyManager,
	})
	require.NoError(t, err)

	var after employee.Employee
	store.Read(func(doc *state.Document) { after = doc.Employees[0] })
	assert.NotEqual(t, before.PasswordHash, after.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(after.PasswordHash), []byte("changed")))
	assert.Nil(t, after.ManagerID)
}

func TestDocuments(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, err := svc.Create(ctx, employee.CreateRequest{
		Name: "Docs", Email: "docs@zenhr.test", Password: "pw",
	})
	require.NoError(t, err)

	withDoc, err := svc.AddDocument(ctx, created.ID, employee.AddDocumentRequest{
		Name: "Contract.pdf",
		Type: "Contract",
	})
	require.NoError(t, err)
	require.Len(t, withDoc.Documents, 1)
	assert.NotEmpty(t, withDoc.Documents[0].UploadDate)

	without, err := svc.RemoveDocument(ctx, created.ID, withDoc.Documents[0].ID)
	require.NoError(t, err)
	assert.Empty(t, without.Documents)

	_, err = svc.RemoveDocument(ctx, created.ID, "missing")
	assert.ErrorIs(t, err, employee.ErrDocumentNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, err := svc.Create(ctx, employee.CreateRequest{
		Name: "Gone", Email: "gone@zenhr.test", Password: "pw",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), employee.ErrEmployeeNotFound)
}
