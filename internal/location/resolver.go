package location

import (
	"fmt"
	"strings"
)

// RouteType classifies a route. The zero value is International.
type RouteType int

const (
	International RouteType = iota
	Domestic
)

func (t RouteType) String() string {
	if t == Domestic {
		return "Domestic"
	}
	return "International"
}

// MarshalText implements encoding.TextMarshaler.
func (t RouteType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *RouteType) UnmarshalText(b []byte) error {
	rt, err := ParseRouteType(string(b))
	if err != nil {
		return err
	}
	*t = rt
	return nil
}

// ParseRouteType parses "Domestic" or "International", ignoring case.
func ParseRouteType(s string) (RouteType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "domestic":
		return Domestic, nil
	case "international":
		return International, nil
	}
	return International, fmt.Errorf("unknown route type %q", s)
}

// Status describes how a Resolution was reached.
type Status string

const (
	// Resolved means the input matched a registry code or name.
	Resolved Status = "resolved"
	// PassThrough means the input looked like a code but is not registered.
	PassThrough Status = "pass_through"
	// Unresolved means nothing matched and Code echoes the normalized input.
	Unresolved Status = "unresolved"
)

// Resolution is the tagged result of resolving free text.
type Resolution struct {
	Input  string `json:"input"`
	Code   string `json:"code"`
	Status Status `json:"status"`
}

// Resolver maps free text to codes and classifies routes against a Registry.
type Resolver struct {
	reg *Registry
}

// NewResolver constructs a Resolver over reg.
func NewResolver(reg *Registry) *Resolver {
	return &Resolver{reg: reg}
}

// Registry returns the registry the resolver reads from.
func (r *Resolver) Registry() *Registry {
	return r.reg
}

// Resolve normalizes input (trim, lower-case, drop whitespace) and tries, in
// order: an exact code, an exact name or alias, the shortest display name with
// the input as prefix (aliases only when no display name matches), then a
// pass-through for unregistered three-letter codes.
func (r *Resolver) Resolve(input string) Resolution {
	n := normalize(input)
	res := Resolution{Input: input, Code: n, Status: Unresolved}
	if n == "" {
		return res
	}

	if _, ok := r.reg.byCode[n]; ok {
		res.Status = Resolved
		return res
	}
	if code, ok := r.reg.codeForName(n); ok {
		res.Code, res.Status = code, Resolved
		return res
	}
	if code, ok := r.reg.codeForPrefix(n); ok {
		res.Code, res.Status = code, Resolved
		return res
	}
	if isAlphaCode(n) {
		res.Status = PassThrough
	}
	return res
}

// ResolveCode returns the code for input. Unknown input is echoed back
// normalized rather than reported; use Resolve to tell the cases apart.
func (r *Resolver) ResolveCode(input string) string {
	return r.Resolve(input).Code
}

// ResolveDisplayName returns the display name registered for code, or code
// unchanged when it is not registered.
func (r *Resolver) ResolveDisplayName(code string) string {
	if e, ok := r.reg.Lookup(code); ok {
		return e.DisplayName
	}
	return code
}

// IsDomestic reports whether input, taken either as a raw key or through its
// resolved code, names a domestic entry.
func (r *Resolver) IsDomestic(input string) bool {
	n := normalize(input)
	if n == "" {
		return false
	}
	if r.domesticCode(n) {
		return true
	}
	if code, ok := r.reg.codeForName(n); ok && r.domesticCode(code) {
		return true
	}
	return r.domesticCode(r.ResolveCode(input))
}

// ClassifyRoute returns Domestic only when both endpoints are domestic.
// Empty or unknown endpoints make the route International.
func (r *Resolver) ClassifyRoute(origin, destination string) RouteType {
	if r.IsDomestic(origin) && r.IsDomestic(destination) {
		return Domestic
	}
	return International
}

func (r *Resolver) domesticCode(code string) bool {
	e, ok := r.reg.byCode[code]
	return ok && e.Domestic
}
