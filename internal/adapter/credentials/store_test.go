package credentials

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/polkiloo/orderdesk/internal/config"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/pkg/auth"
	"github.com/polkiloo/orderdesk/internal/test"
)

func TestNewStaticStoreFromHash(t *testing.T) {
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)

	store, err := NewStaticStore(hash, "ignored", hasher)
	require.NoError(t, err)

	cred, err := store.OperatorCredential(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Operator, cred.Operator)
	assert.Equal(t, model.RoleAdmin, cred.Role)
	assert.Equal(t, hash, cred.PasswordHash)
	assert.NoError(t, hasher.Compare(cred.PasswordHash, "s3cret"))
}

func TestNewStaticStoreHashesPlainPassword(t *testing.T) {
	var hashed []string
	hasher := test.HasherStub{HashFn: func(p string) (string, error) {
		hashed = append(hashed, p)
		return "hash:" + p, nil
	}}
	store, err := NewStaticStore("", "plain", hasher)
	require.NoError(t, err)

	cred, err := store.OperatorCredential(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hash:plain", cred.PasswordHash)
	assert.Equal(t, []string{"plain"}, hashed)
}

func TestNewStaticStoreErrors(t *testing.T) {
	_, err := NewStaticStore("not-a-hash", "", auth.NewBcryptHasher(0))
	assert.Error(t, err)

	_, err = NewStaticStore("", "plain", test.HasherStub{HashFn: func(string) (string, error) { return "", errors.New("boom") }})
	assert.Error(t, err)

	_, err = NewStaticStore("", "", auth.NewBcryptHasher(0))
	assert.ErrorIs(t, err, errMissingPassword)
}

func TestOperatorCredentialReturnsCopy(t *testing.T) {
	store, err := NewStaticStore("", "plain", test.HasherStub{})
	require.NoError(t, err)

	first, err := store.OperatorCredential(context.Background())
	require.NoError(t, err)
	first.Role = "guest"

	second, err := store.OperatorCredential(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, second.Role)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = store.OperatorCredential(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestModuleProvider(t *testing.T) {
	cfg := &config.Config{AdminPassword: "plain"}
	repo, err := newStore(storeParams{Config: cfg, Hasher: test.HasherStub{}})
	require.NoError(t, err)
	require.NotNil(t, repo)
}
