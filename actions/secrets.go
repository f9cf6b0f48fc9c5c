package actions

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/nacl/box"

	"github.com/s0up4200/clientele/rest"
)

// EncryptSecret seals plaintext for the repository or organization that
// owns publicKey. The result is a libsodium sealed box, base64-encoded, as
// CreateOrUpdateRepoSecret expects.
func EncryptSecret(publicKey *PublicKey, name, plaintext string) (*EncryptedSecret, error) {
	if publicKey == nil {
		return nil, errors.New("public key is required")
	}

	raw, err := base64.StdEncoding.DecodeString(publicKey.Key)
	if err != nil {
		return nil, fmt.Errorf("decoding public key %s: %w", publicKey.KeyID, err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("public key %s is %d bytes, want 32", publicKey.KeyID, len(raw))
	}

	var key [32]byte
	copy(key[:], raw)

	sealed, err := box.SealAnonymous(nil, []byte(plaintext), &key, rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("encrypting secret %s: %w", name, err)
	}

	return &EncryptedSecret{
		Name:           name,
		KeyID:          publicKey.KeyID,
		EncryptedValue: base64.StdEncoding.EncodeToString(sealed),
	}, nil
}

// GetRepoPublicKey gets the key repository secrets must be encrypted with.
func (c *Client) GetRepoPublicKey(ctx context.Context, owner, repo string) (*PublicKey, error) {
	path, err := repoPath(owner, repo, "/secrets/public-key")
	if err != nil {
		return nil, err
	}

	var out PublicKey
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRepoSecrets lists repository secrets without their values.
func (c *Client) ListRepoSecrets(ctx context.Context, owner, repo string, opts *ListOptions) (*SecretList, error) {
	path, err := repoPath(owner, repo, "/secrets")
	if err != nil {
		return nil, err
	}

	var out SecretList
	if err := c.get(ctx, path, opts.apply(rest.NewQuery()), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRepoSecret gets the metadata of one repository secret.
func (c *Client) GetRepoSecret(ctx context.Context, owner, repo, name string) (*Secret, error) {
	path, err := repoPath(owner, repo, "/secrets/{secret_name}", name)
	if err != nil {
		return nil, err
	}

	var out Secret
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateOrUpdateRepoSecret stores secret under secret.Name.
func (c *Client) CreateOrUpdateRepoSecret(ctx context.Context, owner, repo string, secret *EncryptedSecret) error {
	if secret == nil {
		return errors.New("secret is required")
	}

	path, err := repoPath(owner, repo, "/secrets/{secret_name}", secret.Name)
	if err != nil {
		return err
	}

	body := struct {
		KeyID          string `json:"key_id"`
		EncryptedValue string `json:"encrypted_value"`
	}{secret.KeyID, secret.EncryptedValue}

	return c.put(ctx, path, body, nil)
}

// DeleteRepoSecret deletes a repository secret.
func (c *Client) DeleteRepoSecret(ctx context.Context, owner, repo, name string) error {
	path, err := repoPath(owner, repo, "/secrets/{secret_name}", name)
	if err != nil {
		return err
	}
	return c.delete(ctx, path, nil, nil)
}

// GetOrgPublicKey gets the key organization secrets must be encrypted with.
func (c *Client) GetOrgPublicKey(ctx context.Context, org string) (*PublicKey, error) {
	path, err := orgPath(org, "/secrets/public-key")
	if err != nil {
		return nil, err
	}

	var out PublicKey
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListOrgSecrets lists organization secrets without their values.
func (c *Client) ListOrgSecrets(ctx context.Context, org string, opts *ListOptions) (*SecretList, error) {
	path, err := orgPath(org, "/secrets")
	if err != nil {
		return nil, err
	}

	var out SecretList
	if err := c.get(ctx, path, opts.apply(rest.NewQuery()), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
