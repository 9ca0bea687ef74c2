// Package draft provides storage for in-progress loadout drafts
package draft

//go:generate mockgen -destination=mock/mock_repository.go -package=draftmock github.com/doomforge/ngplus/internal/repositories/draft Repository

import (
	"context"

	"github.com/doomforge/ngplus/internal/entities/loadout"
)

// Repository defines the storage interface for loadout drafts
type Repository interface {
	// Create stores a new draft
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Get retrieves a draft by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Update replaces an existing draft
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)

	// Delete removes a draft
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the request for storing a new draft
type CreateInput struct {
	Draft *loadout.Draft
}

// CreateOutput defines the response for storing a new draft
type CreateOutput struct {
	Draft *loadout.Draft
}

// GetInput defines the request for retrieving a draft
type GetInput struct {
	ID string
}

// GetOutput defines the response for retrieving a draft
type GetOutput struct {
	Draft *loadout.Draft
}

// UpdateInput defines the request for updating a draft
type UpdateInput struct {
	Draft *loadout.Draft
}

// UpdateOutput defines the response for updating a draft
type UpdateOutput struct {
	Draft *loadout.Draft
}

// DeleteInput defines the request for deleting a draft
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the response for deleting a draft
type DeleteOutput struct {
	Success bool
}
