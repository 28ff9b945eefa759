package snapshot

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/sourcepin/sourcepin/snapshot/entities"
	"github.com/sourcepin/sourcepin/snapshot/ports"
)

// MockRunner implements ports.Runner for testing. Outcomes are scripted per
// subcommand (the first argument after the executable name) and every
// invocation is recorded.
type MockRunner struct {
	Results map[string]ports.RunResult
	Errs    map[string]error
	Calls   [][]string

	// Hooks run after a matching subcommand is recorded, letting tests
	// simulate side effects such as a clone materializing files.
	Hooks map[string]func(args []string)
}

func (m *MockRunner) Run(ctx context.Context, dir string, mode ports.IOMode, name string, args ...string) (ports.RunResult, error) {
	m.Calls = append(m.Calls, append([]string{name}, args...))
	if len(args) == 0 {
		return ports.RunResult{}, fmt.Errorf("no subcommand")
	}
	if hook, ok := m.Hooks[args[0]]; ok {
		hook(args)
	}
	if err, ok := m.Errs[args[0]]; ok {
		return ports.RunResult{}, err
	}
	res, ok := m.Results[args[0]]
	if !ok {
		return ports.RunResult{}, fmt.Errorf("unscripted command: %s %v", name, args)
	}
	return res, nil
}

// MockPinfileRepository implements ports.PinfileRepository.
type MockPinfileRepository struct {
	LoadPin *entities.Pinfile
	LoadErr error

	SavedPath string
	SavedPin  *entities.Pinfile
	SaveErr   error
}

func (m *MockPinfileRepository) Load(ctx context.Context, path string) (*entities.Pinfile, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.LoadPin, nil
}

func (m *MockPinfileRepository) Save(ctx context.Context, path string, pin *entities.Pinfile) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.SavedPath = path
	m.SavedPin = pin
	return nil
}

func NewTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
