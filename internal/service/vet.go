package service

import (
	"context"
	"fmt"
	"strings"
)

// VetVerifier decides whether a user may act as a vet
type VetVerifier interface {
	IsVerifiedVet(ctx context.Context, userID, email string) (bool, error)
}

// credentialVetVerifier grants the vet role to users with a stored vet
// credential, or whose email is on the configured override allow-list.
type credentialVetVerifier struct {
	repo      ProfileRepository
	overrides map[string]struct{}
}

func NewCredentialVetVerifier(repo ProfileRepository, overrideEmails []string) VetVerifier {
	overrides := make(map[string]struct{}, len(overrideEmails))
	for _, email := range overrideEmails {
		overrides[strings.ToLower(email)] = struct{}{}
	}
	return &credentialVetVerifier{
		repo:      repo,
		overrides: overrides,
	}
}

func (v *credentialVetVerifier) IsVerifiedVet(ctx context.Context, userID, email string) (bool, error) {
	if _, ok := v.overrides[strings.ToLower(email)]; ok && email != "" {
		return true, nil
	}

	verified, err := v.repo.HasVetCredential(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("vet verification: %w", err)
	}
	return verified, nil
}
