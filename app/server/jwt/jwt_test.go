package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParseRoundtrip(t *testing.T) {
	j, err := New("test-secret")
	require.NoError(t, err)

	id := uuid.New()
	expires := time.Now().Add(time.Hour).Unix()
	token, err := j.SignToken(&Admin{
		ID:       id,
		Username: "admin",
		Expires:  expires,
	})
	require.NoError(t, err)

	admin, err := j.ParseAdmin(token)
	require.NoError(t, err)
	assert.Equal(t, id, admin.ID)
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, expires, admin.Expires)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	j, err := New("test-secret")
	require.NoError(t, err)

	token, err := j.SignToken(&Admin{
		ID:       uuid.New(),
		Username: "admin",
		Expires:  time.Now().Add(-time.Minute).Unix(),
	})
	require.NoError(t, err)

	_, err = j.ParseAdmin(token)
	require.Error(t, err)
}

func TestParseRejectsWrongKey(t *testing.T) {
	j1, err := New("key-one")
	require.NoError(t, err)
	j2, err := New("key-two")
	require.NoError(t, err)

	token, err := j1.SignToken(&Admin{
		ID:       uuid.New(),
		Username: "admin",
		Expires:  time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	_, err = j2.ParseAdmin(token)
	require.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	j, err := New("test-secret")
	require.NoError(t, err)

	_, err = j.ParseAdmin("")
	require.Error(t, err)

	_, err = j.ParseAdmin("not.a.token")
	require.Error(t, err)
}

func TestNewRequiresKey(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
}
