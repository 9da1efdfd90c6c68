package snapshot

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/zenhr/zenhr-backend-go/internal/state"
)

// LoadDocument reads and decodes the stored document. Callers decide what a
// missing snapshot or a failed load means; seeding is not this package's job.
func LoadDocument(ctx context.Context, backend Backend) (state.Document, error) {
	data, err := backend.Load(ctx)
	if err != nil {
		return state.Document{}, err
	}
	var doc state.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return state.Document{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return doc, nil
}
