// Package spells provides the interface for spell library persistence
package spells

//go:generate mockgen -destination=mock/mock_repository.go -package=spellsmock github.com/KirkDiggler/rpg-spellfx/internal/repositories/spells Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-spellfx/internal/entities/spell"
)

// Repository defines the interface for the spell library. It stores spell
// documents only, never formatted output.
type Repository interface {
	// Put stores a normalized copy of a spell, assigning an ID when the
	// spell has none. The input spell is not modified.
	// Returns errors.InvalidArgument for a nil spell
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Get retrieves a spell by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the spell does not exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetMany retrieves the spells that exist among the given IDs. Missing
	// IDs and records that fail to decode are skipped.
	GetMany(ctx context.Context, input GetManyInput) (*GetManyOutput, error)

	// List returns every decodable stored spell ordered by ID
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a spell
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the spell does not exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Check scans the stored spells for records that fail to decode and
	// for index drift. With Repair set, corrupt records are deleted and the
	// index is rebuilt from the stored keys.
	Check(ctx context.Context, input CheckInput) (*CheckOutput, error)
}

// Record is a stored spell with its library metadata
type Record struct {
	Spell    *spell.Config
	StoredAt time.Time
}

// PutInput defines the input for storing a spell
type PutInput struct {
	Spell *spell.Config
}

// PutOutput defines the output for storing a spell
type PutOutput struct {
	Record *Record
}

// GetInput defines the input for getting a spell
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a spell
type GetOutput struct {
	Record *Record
}

// GetManyInput defines the input for getting several spells
type GetManyInput struct {
	IDs []string
}

// GetManyOutput maps each found ID to its spell
type GetManyOutput struct {
	Spells map[string]*spell.Config
}

// ListInput defines the input for listing spells
type ListInput struct{}

// ListOutput defines the output for listing spells
type ListOutput struct {
	Records []*Record
}

// DeleteInput defines the input for deleting a spell
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a spell
type DeleteOutput struct{}

// CheckInput defines the input for checking the library
type CheckInput struct {
	Repair bool
}

// CheckOutput reports library problems by spell ID
type CheckOutput struct {
	Checked int
	// Corrupt records could not be decoded
	Corrupt []string
	// Unindexed records are stored but missing from the index
	Unindexed []string
	// Orphaned IDs are indexed but have no record
	Orphaned []string
	Repaired bool
}

// Clean reports whether the check found nothing to repair
func (o *CheckOutput) Clean() bool {
	return len(o.Corrupt) == 0 && len(o.Unindexed) == 0 && len(o.Orphaned) == 0
}
