package reactenv

import (
	"fmt"
	"sort"
	"strings"
)

// substitution is one placeholder token and the value that replaces it.
type substitution struct {
	key   string // full environment key, prefix included
	token string // delimiter + key + delimiter, as baked into the build
	value string
}

// deriveSubstitutions filters the environment snapshot down to keys starting
// with prefix and builds their tokens. The snapshot uses the os.Environ form
// ("KEY=value"); entries without '=' are ignored. Results are sorted by key
// so records and replacements are deterministic across runs.
func deriveSubstitutions(environ []string, prefix, delimiter string) []substitution {
	var subs []substitution
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(key, prefix) {
			continue
		}
		subs = append(subs, substitution{
			key:   key,
			token: delimiter + key + delimiter,
			value: value,
		})
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].key < subs[j].key })
	return subs
}

// validateKeys rejects sets where one key is a substring of another. Applying
// such a set could rewrite one token inside another depending on order, so
// the whole run fails before any file is read. The check runs on the keys
// rather than the wrapped tokens: a set accepted here stays safe under every
// delimiter, including the empty one.
func validateKeys(subs []substitution) error {
	for i := range subs {
		for j := range subs {
			if i == j {
				continue
			}
			if strings.Contains(subs[j].key, subs[i].key) {
				return fmt.Errorf("%w: %q within %q", ErrKeyCollision, subs[i].key, subs[j].key)
			}
		}
	}
	return nil
}

// apply performs the literal global replacement of every token in buf.
// Returns the rewritten buffer and whether anything changed.
func apply(buf []byte, subs []substitution) ([]byte, bool) {
	changed := false
	content := string(buf)
	for _, sub := range subs {
		if !strings.Contains(content, sub.token) {
			continue
		}
		content = strings.ReplaceAll(content, sub.token, sub.value)
		changed = true
	}
	if !changed {
		return buf, false
	}
	return []byte(content), true
}
