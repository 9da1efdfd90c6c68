package snapshot

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenhr/zenhr-backend-go/internal/domain/employee"
	"github.com/zenhr/zenhr-backend-go/internal/state"
)

func TestFileBackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "doc.json")

	backend, err := NewFileBackend(path)
	require.NoError(t, err)
	assert.Equal(t, "local", backend.Mode())

	_, err = backend.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSnapshot, "fresh backend has no snapshot")

	payload := []byte(`{"employees":[]}`)
	require.NoError(t, backend.Save(ctx, payload))

	data, err := backend.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, payload, data)

	// A second save replaces the previous content wholesale.
	require.NoError(t, backend.Save(ctx, []byte(`{}`)))
	data, err = backend.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), data)
}

func TestLoadDocument(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "doc.json")

	backend, err := NewFileBackend(path)
	require.NoError(t, err)

	store := state.NewStore()
	store.Hydrate(state.Document{Employees: []employee.Employee{{ID: "1", Name: "A"}}})
	data, _, err := store.MarshalSnapshot()
	require.NoError(t, err)
	require.NoError(t, backend.Save(ctx, data))

	doc, err := LoadDocument(ctx, backend)
	require.NoError(t, err)
	require.Len(t, doc.Employees, 1)
	assert.Equal(t, "1", doc.Employees[0].ID)

	require.NoError(t, backend.Save(ctx, []byte("not json")))
	_, err = LoadDocument(ctx, backend)
	assert.Error(t, err)
}
