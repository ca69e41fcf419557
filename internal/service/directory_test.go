package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CTF179/photocomp/internal/domain"
	"github.com/CTF179/photocomp/internal/service"
)

type countingDirectory struct {
	users map[string]domain.User
	err   error
	calls int
}

func (d *countingDirectory) GetByID(userID string) (*domain.User, error) {
	d.calls++
	if d.err != nil {
		return nil, d.err
	}
	if u, ok := d.users[userID]; ok {
		return &u, nil
	}
	return nil, nil
}

// The cache is a process-wide optional layer; uninitialized it behaves as a
// permanent miss and every lookup falls through to the directory.
func TestCachedUserDirectory_FallsThroughWithoutCache(t *testing.T) {
	dir := &countingDirectory{users: map[string]domain.User{
		"u1": {UserID: "u1", Email: "u1@example.com", FirstName: "Ada", LastName: "Lovelace"},
	}}
	cached := service.NewCachedUserDirectory(dir)

	user, err := cached.GetByID("u1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "u1@example.com", user.Email)

	_, err = cached.GetByID("u1")
	require.NoError(t, err)
	assert.Equal(t, 2, dir.calls)
}

func TestCachedUserDirectory_MissingUser(t *testing.T) {
	cached := service.NewCachedUserDirectory(&countingDirectory{})

	user, err := cached.GetByID("ghost")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestCachedUserDirectory_DirectoryError(t *testing.T) {
	dirErr := errors.New("directory unavailable")
	cached := service.NewCachedUserDirectory(&countingDirectory{err: dirErr})

	_, err := cached.GetByID("u1")
	assert.ErrorIs(t, err, dirErr)
}
