package onboarding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenhr/zenhr-backend-go/internal/domain/employee"
	"github.com/zenhr/zenhr-backend-go/internal/domain/onboarding"
	"github.com/zenhr/zenhr-backend-go/internal/repository/memstore"
	"github.com/zenhr/zenhr-backend-go/internal/state"
)

func TestGeneratePlan(t *testing.T) {
	svc := NewService(nil)

	plan, err := svc.GeneratePlan(context.Background(), onboarding.GeneratePlanRequest{
		Role:       "Designer",
		Department: "Product",
	})
	require.NoError(t, err)
	require.Len(t, plan, 5)

	assert.Equal(t, "Initial Setup", plan[0].Title)
	assert.Contains(t, plan[0].Description, "Designer")
	assert.Contains(t, plan[0].Description, "Product")
	assert.Equal(t, "First Assignment", plan[4].Title)

	_, err = svc.GeneratePlan(context.Background(), onboarding.GeneratePlanRequest{})
	assert.Error(t, err, "role and department are required")
}

func TestCompleteProfile(t *testing.T) {
	store := state.NewStore()
	store.Hydrate(state.Document{Employees: []employee.Employee{{
		ID:     "e1",
		Name:   "New Hire",
		Email:  "new@zenhr.test",
		Status: employee.StatusOnboarding,
	}}})
	repo := memstore.NewEmployeeRepository(store)
	svc := NewService(repo)

	taxID := "TAX-123"
	resp, err := svc.CompleteProfile(context.Background(), "e1", onboarding.CompleteProfileRequest{
		Address: "1 Main St",
		Phone:   "555-0100",
		TaxID:   &taxID,
	})
	require.NoError(t, err)

	assert.Equal(t, employee.StatusActive, resp.Status)
	assert.Equal(t, "1 Main St", resp.Address)
	require.NotNil(t, resp.TaxID)
	assert.Equal(t, "TAX-123", *resp.TaxID)

	_, err = svc.CompleteProfile(context.Background(), "missing", onboarding.CompleteProfileRequest{})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
