package password

import "golang.org/x/crypto/bcrypt"

// Hasher is the one-way password hashing capability. Hashing is invoked
// explicitly at the call sites that receive a plaintext password; there is
// no implicit before-write hook, so a stored hash can never be re-hashed.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash derives a salted bcrypt hash from a plaintext password.
func (h *Hasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plain matches the stored hash.
func (h *Hasher) Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// dummyHash is a valid bcrypt hash of an unguessable throwaway value.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// VerifyDummy burns the same bcrypt cost as a real verification. Called on
// the unknown-email path so login timing does not disclose whether an
// account exists.
func (h *Hasher) VerifyDummy(plain string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(plain))
}
