// Package valueobject defines immutable domain value objects.
package valueobject

// Scheme identifies a supported password hashing scheme.
type Scheme string

const (
	// SchemeBcrypt is the only scheme currently in service.
	SchemeBcrypt Scheme = "bcrypt"
)

// bcrypt cost bounds as defined by the algorithm.
const (
	minBcryptCost = 4
	maxBcryptCost = 31
)

// HashPolicy describes the active hashing scheme and its deprecation rule.
// Any hash produced with a cost below ActiveCost is deprecated and must be
// replaced with a fresh hash after the next successful verification.
type HashPolicy struct {
	Scheme     Scheme
	ActiveCost int
}

// NewHashPolicy creates a bcrypt hash policy with the given work factor.
// Costs outside the valid bcrypt range are clamped.
func NewHashPolicy(cost int) HashPolicy {
	if cost < minBcryptCost {
		cost = minBcryptCost
	}
	if cost > maxBcryptCost {
		cost = maxBcryptCost
	}
	return HashPolicy{
		Scheme:     SchemeBcrypt,
		ActiveCost: cost,
	}
}

// IsDeprecatedCost reports whether a hash produced with the given cost is
// deprecated under this policy.
func (p HashPolicy) IsDeprecatedCost(cost int) bool {
	return cost < p.ActiveCost
}
