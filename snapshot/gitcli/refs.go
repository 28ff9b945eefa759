package gitcli

import (
	"context"
	"regexp"
	"strings"

	"github.com/sourcepin/sourcepin/netutil"
	"github.com/sourcepin/sourcepin/snapshot/entities"
	"github.com/sourcepin/sourcepin/snapshot/ports"
	"github.com/sourcepin/sourcepin/snapshot/values"
)

const (
	tagRefPrefix    = "refs/tags/"
	branchRefPrefix = "refs/heads/"

	// derefSuffix marks the dereferenced listing of an annotated tag.
	derefSuffix = "^{}"
)

// refLinePattern is the wire format of one ls-remote output line:
// a fixed-length lowercase hex hash, a tab, and the full ref name.
var refLinePattern = regexp.MustCompile(`^([0-9a-f]{40,64})\t(refs/.+)$`)

// RefReader lists tags and branches of a remote repository.
// Each listing is a single outbound round trip through the external tool.
type RefReader struct {
	runner ports.Runner
	git    string
}

// NewRefReader creates a reader that shells out through runner.
func NewRefReader(runner ports.Runner) *RefReader {
	return &RefReader{runner: runner, git: "git"}
}

// ListTags lists the remote's tags keyed by tag name. Plain and dereferenced
// listings of the same tag merge into one record: the plain hash becomes
// CommitHash, the ^{} hash becomes AnnotatedHash. A line that does not match
// the wire format is fatal — skipping it could hide a tampered ref.
func (r *RefReader) ListTags(ctx context.Context, remote string) (map[string]values.TagRecord, error) {
	lines, err := r.list(ctx, remote, "--tags")
	if err != nil {
		return nil, err
	}

	safe := netutil.StripCredentials(remote)
	records := make(map[string]values.TagRecord, len(lines))
	for _, line := range lines {
		hash, ref, err := r.parseLine(safe, line)
		if err != nil {
			return nil, err
		}

		name := strings.TrimPrefix(ref, tagRefPrefix)
		if name == ref {
			return nil, &entities.RefParseError{Remote: safe, Line: line}
		}

		if strings.HasSuffix(name, derefSuffix) {
			name = strings.TrimSuffix(name, derefSuffix)
			rec := records[name]
			rec.Name = name
			rec.AnnotatedHash = hash
			records[name] = rec
			continue
		}

		rec := records[name]
		rec.Name = name
		rec.CommitHash = hash
		records[name] = rec
	}

	return records, nil
}

// ListBranches lists the remote's branches as a name-to-commit mapping.
func (r *RefReader) ListBranches(ctx context.Context, remote string) (map[string]string, error) {
	lines, err := r.list(ctx, remote, "--heads")
	if err != nil {
		return nil, err
	}

	safe := netutil.StripCredentials(remote)
	branches := make(map[string]string, len(lines))
	for _, line := range lines {
		hash, ref, err := r.parseLine(safe, line)
		if err != nil {
			return nil, err
		}

		name := strings.TrimPrefix(ref, branchRefPrefix)
		if name == ref {
			return nil, &entities.RefParseError{Remote: safe, Line: line}
		}
		branches[name] = hash
	}

	return branches, nil
}

func (r *RefReader) list(ctx context.Context, remote, refScope string) ([]string, error) {
	safe := netutil.StripCredentials(remote)
	res, err := r.runner.Run(ctx, "", ports.IOSilent, r.git, "ls-remote", refScope, remote)
	if err != nil {
		return nil, &entities.RemoteError{Remote: safe, ExitCode: -1, Stderr: scrubRemote(err.Error(), remote, safe)}
	}
	if res.ExitCode != 0 {
		return nil, &entities.RemoteError{Remote: safe, ExitCode: res.ExitCode, Stderr: scrubRemote(res.Stderr, remote, safe)}
	}

	out := strings.TrimRight(res.Stdout, "\n")
	if out == "" {
		// An empty ref namespace violates the read contract with the remote.
		return nil, &entities.RemoteError{Remote: safe, ExitCode: 0, Stderr: "empty ref listing"}
	}

	return strings.Split(out, "\n"), nil
}

// scrubRemote replaces a credentialed remote echoed in tool output with its
// stripped form, so secrets never reach an error string.
func scrubRemote(out, remote, safe string) string {
	if safe == remote {
		return out
	}
	return strings.ReplaceAll(out, remote, safe)
}

func (r *RefReader) parseLine(remote, line string) (hash, ref string, err error) {
	m := refLinePattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", &entities.RefParseError{Remote: remote, Line: line}
	}
	return m[1], m[2], nil
}
