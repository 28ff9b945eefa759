// Package netutil provides helpers for handling remote repository addresses
// and bounded capture of subprocess output.
package netutil

import (
	"net/url"
	"strings"
)

// IsSCPLike reports whether a remote uses the scp-like syntax
// (user@host:path) rather than a URL with an explicit scheme.
func IsSCPLike(remote string) bool {
	if strings.Contains(remote, "://") {
		return false
	}
	colon := strings.Index(remote, ":")
	slash := strings.Index(remote, "/")
	return colon > 0 && (slash == -1 || colon < slash)
}

// StripCredentials removes user:password@ from a remote URL for safe logging.
// scp-like remotes are returned unchanged: their user part is the transport
// login, not a secret. Unparseable input is returned as given.
func StripCredentials(remote string) string {
	if IsSCPLike(remote) {
		return remote
	}

	parsed, err := url.Parse(remote)
	if err != nil {
		return remote
	}

	parsed.User = nil

	return parsed.String()
}

// HasCredentials returns true if the remote URL embeds credentials.
func HasCredentials(remote string) bool {
	if IsSCPLike(remote) {
		return false
	}
	parsed, err := url.Parse(remote)
	if err != nil {
		return false
	}
	return parsed.User != nil
}

// NormalizeRemote returns a normalized form of a remote address suitable for
// pinfile entries and comparisons. It lowercases the scheme and host, strips
// credentials, and removes a trailing slash. scp-like remotes are returned
// unchanged.
func NormalizeRemote(remote string) string {
	if IsSCPLike(remote) {
		return remote
	}

	parsed, err := url.Parse(remote)
	if err != nil {
		return remote
	}

	parsed.User = nil
	parsed.Scheme = strings.ToLower(parsed.Scheme)
	parsed.Host = strings.ToLower(parsed.Host)

	if parsed.Path != "/" && strings.HasSuffix(parsed.Path, "/") {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	}

	return parsed.String()
}
