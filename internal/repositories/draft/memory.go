package draft

import (
	"context"
	"sync"

	"github.com/doomforge/ngplus/internal/entities/loadout"
	"github.com/doomforge/ngplus/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage.
// Drafts live only as long as the process; the tool has no persistence
// beyond the generated archive.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*loadout.Draft
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*loadout.Draft),
	}
}

// Create stores a new draft
func (r *InMemoryRepository) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil || input.Draft == nil {
		return nil, errors.InvalidArgument("draft is required")
	}

	if input.Draft.ID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Draft.ID]; exists {
		return nil, errors.AlreadyExists("draft already exists: " + input.Draft.ID)
	}

	r.store[input.Draft.ID] = input.Draft.Clone()

	return &CreateOutput{Draft: input.Draft.Clone()}, nil
}

// Get retrieves a draft by ID
func (r *InMemoryRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.ID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	d, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFound("draft not found: " + input.ID)
	}

	// Copies on the way out so callers cannot mutate the stored draft
	return &GetOutput{Draft: d.Clone()}, nil
}

// Update replaces an existing draft
func (r *InMemoryRepository) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil || input.Draft == nil {
		return nil, errors.InvalidArgument("draft is required")
	}

	if input.Draft.ID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Draft.ID]; !exists {
		return nil, errors.NotFound("draft not found: " + input.Draft.ID)
	}

	r.store[input.Draft.ID] = input.Draft.Clone()

	return &UpdateOutput{Draft: input.Draft.Clone()}, nil
}

// Delete removes a draft
func (r *InMemoryRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.ID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFound("draft not found: " + input.ID)
	}

	delete(r.store, input.ID)

	return &DeleteOutput{Success: true}, nil
}
