package location

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidCode is returned when an entry code is not three ASCII letters.
	ErrInvalidCode = errors.New("code must be three letters")
	// ErrDuplicateCode is returned when two entries share a code.
	ErrDuplicateCode = errors.New("duplicate code")
	// ErrDuplicateName is returned when two entries normalize to the same name key.
	ErrDuplicateName = errors.New("duplicate name")
)

// Entry is a single city or airport known to the registry.
type Entry struct {
	Code        string   `json:"code"`
	DisplayName string   `json:"display_name"`
	Domestic    bool     `json:"domestic"`
	Aliases     []string `json:"aliases,omitempty"`
}

// nameKey pairs a normalized name fragment with the code it resolves to.
type nameKey struct {
	key   string
	code  string
	alias bool
}

// Registry is a read-only lookup table of entries keyed by code and by
// normalized display name. It is never mutated after NewRegistry returns,
// so a single instance can be shared by any number of goroutines.
type Registry struct {
	byCode map[string]Entry
	byName map[string]string
	// names holds display names before aliases, each group sorted by key
	// length then key, so prefix lookups are deterministic.
	names []nameKey
}

// NewRegistry validates entries and builds a Registry from them.
func NewRegistry(entries []Entry) (*Registry, error) {
	r := &Registry{
		byCode: make(map[string]Entry, len(entries)),
		byName: make(map[string]string, len(entries)),
	}

	for _, e := range entries {
		code := strings.ToLower(strings.TrimSpace(e.Code))
		if !isAlphaCode(code) {
			return nil, fmt.Errorf("entry %q: %w", e.Code, ErrInvalidCode)
		}
		if _, ok := r.byCode[code]; ok {
			return nil, fmt.Errorf("entry %q: %w", code, ErrDuplicateCode)
		}
		e.Code = code
		e.Aliases = append([]string(nil), e.Aliases...)
		r.byCode[code] = e

		for i, name := range append([]string{e.DisplayName}, e.Aliases...) {
			key := normalize(name)
			if key == "" {
				continue
			}
			if other, ok := r.byName[key]; ok {
				return nil, fmt.Errorf("entry %q name %q already used by %q: %w", code, name, other, ErrDuplicateName)
			}
			r.byName[key] = code
			r.names = append(r.names, nameKey{key: key, code: code, alias: i > 0})
		}
	}

	sort.Slice(r.names, func(i, j int) bool {
		if r.names[i].alias != r.names[j].alias {
			return !r.names[i].alias
		}
		if len(r.names[i].key) != len(r.names[j].key) {
			return len(r.names[i].key) < len(r.names[j].key)
		}
		return r.names[i].key < r.names[j].key
	})

	return r, nil
}

// DefaultRegistry builds the registry from the built-in city table.
// It panics if the table is invalid, which can only happen through a code change.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultEntries())
	if err != nil {
		panic(fmt.Sprintf("location: invalid built-in table: %v", err))
	}
	return r
}

// Lookup returns the entry for code, ignoring case and surrounding whitespace.
func (r *Registry) Lookup(code string) (Entry, bool) {
	e, ok := r.byCode[strings.ToLower(strings.TrimSpace(code))]
	return e, ok
}

// Entries returns a copy of all entries sorted by code.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.byCode))
	for _, e := range r.byCode {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Len reports the number of entries.
func (r *Registry) Len() int {
	return len(r.byCode)
}

func (r *Registry) codeForName(key string) (string, bool) {
	code, ok := r.byName[key]
	return code, ok
}

func (r *Registry) codeForPrefix(prefix string) (string, bool) {
	if prefix == "" {
		return "", false
	}
	for _, n := range r.names {
		if strings.HasPrefix(n.key, prefix) {
			return n.code, true
		}
	}
	return "", false
}

// normalize lower-cases s and strips all whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "")
}

func isAlphaCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
