package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"gocloud.dev/secrets"

	// Register the KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// ErrMissingSigningSecret is returned when no token signing secret is configured.
var ErrMissingSigningSecret = errors.New("AUTH_TOKEN_SECRET must be set")

// LoadSigningSecret returns the token signing secret. Without a key URI the configured value
// is used as is. With a key URI (gcpkms://, awskms://, azurekeyvault://, hashivault://,
// base64key://) the value is base64 ciphertext decrypted by the keeper.
func LoadSigningSecret(ctx context.Context, configured, keyURI string) ([]byte, error) {
	if configured == "" {
		return nil, ErrMissingSigningSecret
	}
	if keyURI == "" {
		return []byte(configured), nil
	}

	ciphertext, err := base64.StdEncoding.DecodeString(configured)
	if err != nil {
		return nil, fmt.Errorf("failed to decode token secret ciphertext: %w", err)
	}

	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer func() {
		_ = keeper.Close()
	}()

	plaintext, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt token secret: %w", err)
	}
	return plaintext, nil
}
