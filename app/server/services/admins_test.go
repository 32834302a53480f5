package services

import (
	"context"
	"strings"
	"testing"

	"github.com/alexedwards/argon2id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateAdminHashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, zap.NewNop())
	ctx := context.Background()

	admin, err := svc.Create(ctx, "Catalog Admin", "admin", "hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", admin.Password)

	// 重新取出的记录必须能对上原始明文，对不上其他任何串
	stored, err := svc.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	match, _, err := argon2id.CheckHash("hunter22", stored.Password)
	require.NoError(t, err)
	assert.True(t, match)
	match, _, err = argon2id.CheckHash("hunter3", stored.Password)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestCreateAdminValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Create(ctx, "", "admin", "pw")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, "A", "admin", "pw")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, strings.Repeat("x", 51), "admin", "pw")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, "Catalog Admin", "admin", "")
	require.ErrorIs(t, err, ErrValidation)
}

func TestCreateAdminDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Create(ctx, "Catalog Admin", "admin", "pw123456")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "Someone Else", "admin", "pw123456")
	require.ErrorIs(t, err, ErrConflict)
}

func TestFindByUsernameNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, zap.NewNop())

	_, err := svc.FindByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrNotFound)
}
