package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier owns how a password is stored and how a login attempt
// is compared against the stored value.
type CredentialVerifier interface {
	Seal(password string) (string, error)
	Verify(stored, supplied string) bool
}

const (
	VerifierPlaintext = "plaintext"
	VerifierBcrypt    = "bcrypt"
)

// NewVerifier picks a verifier by name. Empty means plaintext.
func NewVerifier(name string) (CredentialVerifier, error) {
	switch name {
	case "", VerifierPlaintext:
		return PlaintextVerifier{}, nil
	case VerifierBcrypt:
		return BcryptVerifier{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown credential verifier %q", name)
	}
}

// PlaintextVerifier stores passwords as entered and compares them with
// exact string equality.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Seal(password string) (string, error) {
	return password, nil
}

func (PlaintextVerifier) Verify(stored, supplied string) bool {
	return stored == supplied
}

// BcryptVerifier stores bcrypt hashes.
type BcryptVerifier struct {
	Cost int
}

func (v BcryptVerifier) Seal(password string) (string, error) {
	cost := v.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptVerifier) Verify(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}
