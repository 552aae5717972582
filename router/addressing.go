package router

import (
	"fmt"
	"net/url"
	"strings"
)

// Addressing selects where in a URL the recipe slug lives.
type Addressing int

const (
	// Path addresses a recipe by the last path segment: /recipes/<slug>.
	Path Addressing = iota
	// Hash addresses a recipe by the fragment: #<slug>.
	Hash
)

// PathPrefix is the path under which recipes are addressed.
const PathPrefix = "/recipes/"

func ParseAddressing(s string) (Addressing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "path":
		return Path, nil
	case "hash", "fragment":
		return Hash, nil
	default:
		return Path, fmt.Errorf("unknown addressing scheme %q", s)
	}
}

func (a Addressing) String() string {
	if a == Hash {
		return "hash"
	}
	return "path"
}

// Slug extracts the recipe identifier from u. An empty result means the
// index view.
func (a Addressing) Slug(u *url.URL) string {
	if u == nil {
		return ""
	}
	if a == Hash {
		return strings.TrimSpace(u.Fragment)
	}

	p := strings.TrimSuffix(u.Path, "/")
	if !strings.HasPrefix(p+"/", PathPrefix) {
		return ""
	}
	rest := strings.TrimPrefix(p, strings.TrimSuffix(PathPrefix, "/"))
	rest = strings.TrimPrefix(rest, "/")
	if i := strings.LastIndex(rest, "/"); i >= 0 {
		rest = rest[i+1:]
	}
	return rest
}

// Href builds the link that addresses slug.
func (a Addressing) Href(slug string) string {
	if a == Hash {
		return "#" + url.PathEscape(slug)
	}
	return PathPrefix + url.PathEscape(slug)
}
