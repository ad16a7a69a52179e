// Package registry is the process-wide catalogue of cipher engines (C7):
// a single, statically registered instance per cipher type, shared by every
// caller so property tests can rely on GetEngine returning the same value on
// repeated calls (spec.md §4.7, property P6).
package registry

import "github.com/YounoussaBen/classical-cipher-cryptanalysis-backend/ciphers"

// Family groups engines by structural class: the three families the
// classifier assigns probabilities to. The orchestrator's cost tiers are a
// separate grouping that mixes families.
type Family string

const (
	FamilyMonoalphabetic   Family = "monoalphabetic"
	FamilyPolyalphabetic   Family = "polyalphabetic"
	FamilyTransposition    Family = "transposition"
)

type entry struct {
	engine ciphers.Engine
	family Family
}

// registrations is the declarative table backing the registry. Order here is
// the canonical iteration order for All/InFamily.
var registrations = []entry{
	{ciphers.CaesarEngine{}, FamilyMonoalphabetic},
	{ciphers.AffineEngine{}, FamilyMonoalphabetic},
	{ciphers.AtbashEngine{}, FamilyMonoalphabetic},
	{ciphers.ROT13Engine{}, FamilyMonoalphabetic},
	{ciphers.SimpleSubstitutionEngine{}, FamilyMonoalphabetic},
	{ciphers.VigenereEngine{}, FamilyPolyalphabetic},
	{ciphers.BeaufortEngine{}, FamilyPolyalphabetic},
	{ciphers.AutokeyEngine{}, FamilyPolyalphabetic},
	{ciphers.RailFenceEngine{}, FamilyTransposition},
	{ciphers.ColumnarEngine{}, FamilyTransposition},
}

var (
	byType   = make(map[string]ciphers.Engine, len(registrations))
	typeFamily = make(map[string]Family, len(registrations))
	order    = make([]string, 0, len(registrations))
)

func init() {
	for _, e := range registrations {
		t := e.engine.Type()
		byType[t] = e.engine
		typeFamily[t] = e.family
		order = append(order, t)
	}
}

// GetEngine returns the singleton Engine registered for cipherType. The same
// Engine value is returned on every call (property P6).
func GetEngine(cipherType string) (ciphers.Engine, bool) {
	e, ok := byType[cipherType]
	return e, ok
}

// FamilyOf reports the structural family a registered cipher type belongs to.
func FamilyOf(cipherType string) (Family, bool) {
	f, ok := typeFamily[cipherType]
	return f, ok
}

// All returns every registered cipher type in canonical registration order.
func All() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// InFamily returns the registered cipher types belonging to family, in
// canonical registration order.
func InFamily(family Family) []string {
	var out []string
	for _, t := range order {
		if typeFamily[t] == family {
			out = append(out, t)
		}
	}
	return out
}
