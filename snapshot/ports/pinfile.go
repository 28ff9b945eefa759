package ports

import (
	"context"

	"github.com/sourcepin/sourcepin/snapshot/entities"
)

// PinfileRepository persists pin records for later reproducibility checks.
type PinfileRepository interface {
	// Load reads a pinfile from the given path.
	Load(ctx context.Context, path string) (*entities.Pinfile, error)

	// Save writes a pinfile to the given path, replacing any existing file.
	Save(ctx context.Context, path string, pin *entities.Pinfile) error
}
