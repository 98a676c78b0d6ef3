package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopmap/internal/apperr"
	"shopmap/internal/models"
)

func TestUserRepository_CreateUser(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	user := &models.User{
		Username:               "alice",
		Email:                  "alice@example.com",
		RefreshToken:           "refresh_token",
		RefreshTokenExpiryTime: time.Time{},
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(
			sqlmock.AnyArg(), // user_id generated in the repository
			"alice",
			"alice@example.com",
			sqlmock.AnyArg(), // password_hash
			"refresh_token",
			time.Time{},
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateUser(context.Background(), user, "password123")

	require.NoError(t, err)
	assert.NotEmpty(t, user.UserID)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetUserByUsername_NotFound(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	mock.ExpectQuery("SELECT \\* FROM users WHERE username").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	_, err := repo.GetUserByUsername(context.Background(), "ghost")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestUserRepository_VerifyPassword_WrongPassword(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	// hash of a different password
	otherUser := &models.User{Username: "alice", Email: "alice@example.com"}
	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, repo.CreateUser(context.Background(), otherUser, "correct horse"))

	mock.ExpectQuery("SELECT \\* FROM users WHERE username").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(
			[]string{"user_id", "username", "email", "password_hash", "refresh_token", "refresh_token_expiry_time"}).
			AddRow(otherUser.UserID, "alice", "alice@example.com", otherUser.PasswordHash, "", time.Now()))

	_, err := repo.VerifyPassword(context.Background(), "alice", "battery staple")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrPermission))
}
