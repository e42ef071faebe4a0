// Package giturl parses git remote URLs into host/owner/repo components.
package giturl

import "strings"

// RemoteURL is a parsed git remote in any of the common formats:
//
//	https://<host>/<owner>/<repo>.git
//	http://<host>/<owner>/<repo>.git
//	ssh://[user@]<host>/<owner>/<repo>.git
//	git@<host>:<owner>/<repo>.git
type RemoteURL struct {
	Host  string
	Owner string
	Repo  string
}

// Parse splits a remote URL into components. The second return value is
// false for malformed or unsupported URLs (including ssh URLs with an
// explicit port, which don't fit the host/owner/repo model).
func Parse(raw string) (RemoteURL, bool) {
	raw = strings.TrimSpace(raw)

	var host, owner, repo string
	switch {
	case strings.HasPrefix(raw, "https://"), strings.HasPrefix(raw, "http://"):
		rest := strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
		parts := strings.SplitN(rest, "/", 4)
		if len(parts) < 3 {
			return RemoteURL{}, false
		}
		host, owner, repo = parts[0], parts[1], parts[2]

	case strings.HasPrefix(raw, "ssh://"):
		rest := strings.TrimPrefix(raw, "ssh://")
		if at := strings.LastIndex(rest, "@"); at >= 0 {
			rest = rest[at+1:]
		}
		parts := strings.SplitN(rest, "/", 4)
		if len(parts) < 3 || strings.Contains(parts[0], ":") {
			return RemoteURL{}, false
		}
		host, owner, repo = parts[0], parts[1], parts[2]

	case strings.HasPrefix(raw, "git@"):
		hostPart, path, ok := strings.Cut(strings.TrimPrefix(raw, "git@"), ":")
		if !ok {
			return RemoteURL{}, false
		}
		parts := strings.SplitN(path, "/", 3)
		if len(parts) < 2 {
			return RemoteURL{}, false
		}
		host, owner, repo = hostPart, parts[0], parts[1]

	default:
		return RemoteURL{}, false
	}

	repo = strings.TrimSuffix(repo, ".git")
	if host == "" || owner == "" || repo == "" {
		return RemoteURL{}, false
	}

	return RemoteURL{Host: host, Owner: owner, Repo: repo}, true
}

// IsGitHub reports whether the remote is hosted on github.com.
func (u RemoteURL) IsGitHub() bool {
	return u.Host == "github.com"
}

// String returns the "host/owner/repo" identifier.
func (u RemoteURL) String() string {
	return u.Host + "/" + u.Owner + "/" + u.Repo
}
