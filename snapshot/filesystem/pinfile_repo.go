package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/sourcepin/sourcepin/snapshot/entities"
)

// FilePinfileRepository implements ports.PinfileRepository using the local filesystem.
type FilePinfileRepository struct{}

// NewFilePinfileRepository creates a new FilePinfileRepository.
func NewFilePinfileRepository() *FilePinfileRepository {
	return &FilePinfileRepository{}
}

// Load reads a pinfile from the given path. A missing file or directory is
// not an error; it returns nil.
func (r *FilePinfileRepository) Load(ctx context.Context, path string) (*entities.Pinfile, error) {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	// os.OpenRoot confines reads to the pinfile's directory.
	root, err := os.OpenRoot(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open directory %q: %w", dir, err)
	}
	defer func() { _ = root.Close() }()

	file, err := root.Open(base)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open pinfile %q: %w", base, err)
	}
	defer func() { _ = file.Close() }()

	var out Pinfile
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding pinfile YAML: %w", err)
	}

	pin, err := out.ToEntity()
	if err != nil {
		return nil, fmt.Errorf("invalid pinfile: %w", err)
	}
	if err := pin.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pinfile: %w", err)
	}

	return pin, nil
}

// Save writes a pinfile to the given path, replacing any existing file.
func (r *FilePinfileRepository) Save(ctx context.Context, path string, pin *entities.Pinfile) error {
	if err := pin.Validate(); err != nil {
		return fmt.Errorf("invalid pinfile: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating directory %q: %w", dir, err)
	}

	root, err := os.OpenRoot(dir)
	if err != nil {
		return fmt.Errorf("opening directory for write %q: %w", dir, err)
	}
	defer func() { _ = root.Close() }()

	base := filepath.Base(path)
	file, err := root.OpenFile(base, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating pinfile %q: %w", base, err)
	}
	defer func() { _ = file.Close() }()

	encoder := yaml.NewEncoder(file)
	defer func() { _ = encoder.Close() }()

	if err := encoder.Encode(FromEntity(pin)); err != nil {
		return fmt.Errorf("encoding pinfile: %w", err)
	}

	return nil
}
