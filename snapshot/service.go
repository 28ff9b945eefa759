// Package snapshot provides trust-anchored retrieval of version-selected
// repository snapshots and reproducibility digests over their file trees.
package snapshot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sourcepin/sourcepin/netutil"
	"github.com/sourcepin/sourcepin/snapshot/dto"
	"github.com/sourcepin/sourcepin/snapshot/entities"
	"github.com/sourcepin/sourcepin/snapshot/filesystem"
	"github.com/sourcepin/sourcepin/snapshot/gitcli"
	"github.com/sourcepin/sourcepin/snapshot/hashing"
	"github.com/sourcepin/sourcepin/snapshot/ports"
	"github.com/sourcepin/sourcepin/snapshot/resolvers"
	"github.com/sourcepin/sourcepin/snapshot/signing"
)

// Service orchestrates the snapshot use cases: list remote tags, select the
// best version, clone it, gate it behind a signature check, and digest its
// tree. It holds no state across calls; concurrent use against different
// destination paths is safe, the same destination must be serialized by the
// caller.
type Service struct {
	runner   ports.Runner
	cmp      ports.VersionComparator
	pins     ports.PinfileRepository
	logger   *slog.Logger
	refs     *gitcli.RefReader
	fetcher  *gitcli.Fetcher
	trees    *gitcli.TreeReader
	verifier *signing.Verifier
	selector *resolvers.TagSelector
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithRunner sets the subprocess runner.
func WithRunner(r ports.Runner) ServiceOption {
	return func(s *Service) { s.runner = r }
}

// WithComparator sets the version-ordering capability.
func WithComparator(c ports.VersionComparator) ServiceOption {
	return func(s *Service) { s.cmp = c }
}

// WithPinfileRepository sets the pinfile store.
func WithPinfileRepository(p ports.PinfileRepository) ServiceOption {
	return func(s *Service) { s.pins = p }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) { s.logger = l }
}

// NewService creates a snapshot service with the given options.
func NewService(opts ...ServiceOption) *Service {
	s := &Service{
		runner: gitcli.NewExecRunner(),
		cmp:    resolvers.NewSemverComparator(),
		pins:   filesystem.NewFilePinfileRepository(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.refs = gitcli.NewRefReader(s.runner)
	s.fetcher = gitcli.NewFetcher(s.runner)
	s.trees = gitcli.NewTreeReader(s.runner)
	s.verifier = signing.NewVerifier(s.runner)
	s.selector = resolvers.NewTagSelector(s.cmp)

	return s
}

// Fetch is the main use case: retrieve the snapshot described by spec and
// return it with its reproducibility digest. All failures surface to the
// caller; there are no retries and no partial recovery.
func (s *Service) Fetch(ctx context.Context, spec *dto.FetchSpecDTO) (*entities.Snapshot, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	algorithm, err := spec.ToAlgorithm()
	if err != nil {
		return nil, err
	}

	remote := netutil.StripCredentials(spec.Remote)

	tag := spec.Tag
	if spec.Constraint != "" {
		tags, err := s.refs.ListTags(ctx, spec.Remote)
		if err != nil {
			return nil, err
		}

		names := make([]string, 0, len(tags))
		for name := range tags {
			names = append(names, name)
		}

		tag = s.selector.MatchTag(names, spec.Constraint)
		if tag == "" {
			return nil, fmt.Errorf("no tag on %s satisfies constraint %q", remote, spec.Constraint)
		}
		s.logger.Info("resolved version constraint",
			"remote", remote,
			"constraint", spec.Constraint,
			"tag", tag)
	}

	if tag != "" {
		err = s.fetcher.CloneRepo(ctx, tag, spec.Remote, spec.Destination)
	} else {
		err = s.fetcher.CloneFiles(ctx, spec.Remote, spec.Destination)
	}
	if err != nil {
		return nil, err
	}

	commit, err := s.fetcher.HeadCommit(ctx, spec.Destination)
	if err != nil {
		return nil, err
	}

	if spec.Verify {
		if err := s.verifier.VerifyRepo(ctx, tag, commit, spec.Destination, spec.IOMode()); err != nil {
			return nil, err
		}
		s.logger.Info("signature verified", "remote", remote, "tag", tag, "commit", commit)
	}

	hasher := hashing.NewTreeHasher(s.trees, hashing.WithExcludes(spec.Excludes...))
	treeHash, err := hasher.TreeHash(ctx, spec.Destination, spec.Destination, algorithm)
	if err != nil {
		return nil, err
	}

	s.logger.Info("snapshot fetched",
		"remote", remote,
		"tag", tag,
		"commit", commit,
		"tree_hash", treeHash.String())

	return &entities.Snapshot{
		Dir:      spec.Destination,
		Remote:   netutil.NormalizeRemote(spec.Remote),
		Tag:      tag,
		Commit:   commit,
		TreeHash: treeHash,
	}, nil
}

// Pin records a completed snapshot at pinPath for later verification.
func (s *Service) Pin(ctx context.Context, snap *entities.Snapshot, spec *dto.FetchSpecDTO, pinPath string) (*entities.Pinfile, error) {
	pin := entities.NewPinfile(snap, spec.Requested(), spec.Excludes)
	if err := s.pins.Save(ctx, pinPath, pin); err != nil {
		return nil, err
	}
	return pin, nil
}

// Verify recomputes the tree hash of the checkout at dir and compares it with
// the pin record loaded from pinPath. A hash that no longer matches yields a
// TreeMismatchError carrying both digests.
func (s *Service) Verify(ctx context.Context, dir, pinPath string) error {
	pin, err := s.pins.Load(ctx, pinPath)
	if err != nil {
		return err
	}
	if pin == nil {
		return fmt.Errorf("no pinfile at %s", pinPath)
	}

	hasher := hashing.NewTreeHasher(s.trees, hashing.WithExcludes(pin.Excludes...))
	actual, err := hasher.TreeHash(ctx, dir, dir, pin.TreeHash.Algorithm())
	if err != nil {
		return err
	}

	if !pin.TreeHash.Equals(actual) {
		return &entities.TreeMismatchError{Expected: pin.TreeHash, Actual: actual}
	}

	s.logger.Info("snapshot verified", "dir", dir, "tree_hash", actual.String())
	return nil
}
