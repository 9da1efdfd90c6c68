package orgchart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenhr/zenhr-backend-go/internal/domain/employee"
	"github.com/zenhr/zenhr-backend-go/internal/domain/orgchart"
)

func strPtr(s string) *string { return &s }

func TestBuildSingleRoot(t *testing.T) {
	root, err := Build([]employee.Employee{
		{ID: "1", Name: "CEO"},
		{ID: "2", Name: "Manager", ManagerID: strPtr("1")},
		{ID: "3", Name: "Report", ManagerID: strPtr("2")},
	})
	require.NoError(t, err)

	assert.Equal(t, "1", root.ID)
	assert.False(t, root.Synthetic)
	require.Len(t, root.Children, 1)
	require.Len(t, root.Children[0].Children, 1)
	assert.Equal(t, "3", root.Children[0].Children[0].ID)
}

func TestBuildEmptyDirectory(t *testing.T) {
	root, err := Build(nil)
	require.NoError(t, err)
	assert.Equal(t, orgchart.SyntheticRootID, root.ID)
	assert.True(t, root.Synthetic)
	assert.Empty(t, root.Children)
}

func TestBuildMultipleRootsGetSyntheticParent(t *testing.T) {
	root, err := Build([]employee.Employee{
		{ID: "1", Name: "Founder A"},
		{ID: "2", Name: "Founder B"},
		{ID: "3", Name: "Report", ManagerID: strPtr("1")},
	})
	require.NoError(t, err)

	assert.Equal(t, orgchart.SyntheticRootID, root.ID)
	assert.True(t, root.Synthetic)
	assert.Len(t, root.Children, 2)
}

func TestBuildDanglingManagerBecomesRoot(t *testing.T) {
	root, err := Build([]employee.Employee{
		{ID: "1", Name: "CEO"},
		{ID: "2", Name: "Orphan", ManagerID: strPtr("gone")},
	})
	require.NoError(t, err)

	// The dangling reference is treated as "no manager", leaving two roots
	// under the synthetic node instead of an error.
	assert.Equal(t, orgchart.SyntheticRootID, root.ID)
	assert.Len(t, root.Children, 2)
}

func TestBuildCycleIsReported(t *testing.T) {
	_, err := Build([]employee.Employee{
		{ID: "1", Name: "CEO"},
		{ID: "2", Name: "A", ManagerID: strPtr("3")},
		{ID: "3", Name: "B", ManagerID: strPtr("2")},
	})
	assert.ErrorIs(t, err, orgchart.ErrCyclicHierarchy)
}

func TestBuildSelfManagedIsRoot(t *testing.T) {
	root, err := Build([]employee.Employee{
		{ID: "1", Name: "Loner", ManagerID: strPtr("1")},
	})
	require.NoError(t, err)
	assert.Equal(t, "1", root.ID)
}
