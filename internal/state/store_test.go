package state

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenhr/zenhr-backend-go/internal/domain/employee"
)

func TestWriteBumpsRevisionAndFiresHook(t *testing.T) {
	store := NewStore()

	var seen []uint64
	store.OnChange(func(rev uint64) { seen = append(seen, rev) })

	store.Write(func(doc *Document) {
		doc.Employees = append(doc.Employees, employee.Employee{ID: "1"})
	})
	store.Write(func(doc *Document) {
		doc.Employees = append(doc.Employees, employee.Employee{ID: "2"})
	})

	assert.Equal(t, uint64(2), store.Revision())
	assert.Equal(t, []uint64{1, 2}, seen)
}

func TestHydrateIsNotAChange(t *testing.T) {
	store := NewStore()

	fired := false
	store.OnChange(func(uint64) { fired = true })

	store.Hydrate(Document{Employees: []employee.Employee{{ID: "1"}}})

	assert.False(t, fired, "hydration must not trigger a save")
	assert.Equal(t, uint64(0), store.Revision())

	var count int
	store.Read(func(doc *Document) { count = len(doc.Employees) })
	assert.Equal(t, 1, count)
}

func TestMarshalSnapshot(t *testing.T) {
	store := NewStore()
	store.Write(func(doc *Document) {
		doc.Employees = append(doc.Employees, employee.Employee{ID: "1", Name: "A"})
	})

	data, rev, err := store.MarshalSnapshot()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), rev)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Employees, 1)
	assert.Equal(t, "A", doc.Employees[0].Name)
}

func TestDocumentEmpty(t *testing.T) {
	assert.True(t, Document{}.Empty())
	assert.False(t, Document{Employees: []employee.Employee{{ID: "1"}}}.Empty())
}
