package shared

import (
	"errors"
	"github.com/microcosm-cc/bluemonday"
	"html"
	"strings"
)

// StripHtml turns an HTML notification into plain text.
func StripHtml(htm string) string {
	p := bluemonday.StrictPolicy()
	plain := p.Sanitize(htm)
	plain = html.UnescapeString(plain)
	plain = strings.TrimSpace(plain)
	return plain
}

// SplitRepoName splits "owner/name" into its parts.
func SplitRepoName(repo string) (owner, name string, err error) {
	repo = strings.TrimSpace(repo)
	repo = strings.TrimPrefix(repo, "https://github.com/")
	repo = strings.TrimRight(repo, "/")
	parts := strings.Split(repo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.New("repository must be given as owner/name")
	}
	return parts[0], parts[1], nil
}

// ValidateLogin checks that a login can be placed in an API path as-is.
func ValidateLogin(login string) error {
	if len(login) == 0 {
		return errors.New("login cannot be empty")
	}
	for _, c := range login {
		if c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '-' || c == '_' || c == '.' {
			continue
		}
		return errors.New("login contains invalid characters")
	}
	return nil
}
