package service

import (
	"testing"

	"go-fabshop-api/internal/model"
	"go-fabshop-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthService(t *testing.T) (AuthService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "Failed to open test database")
	require.NoError(t, db.AutoMigrate(&model.Worker{}))

	worker := model.Worker{Username: "paolo", AccessCode: "1234"}
	require.NoError(t, db.Create(&worker).Error)

	return NewAuthService(repository.NewWorkerRepo(db)), db
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := setupAuthService(t)

	resp, err := svc.Login("paolo", "1234")
	require.NoError(t, err)
	assert.Equal(t, "paolo", resp.Username)
	assert.NotZero(t, resp.ID)
	assert.NotEmpty(t, resp.Token)

	worker, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "paolo", worker.Username)
	assert.Equal(t, resp.ID, worker.ID)
}

func TestLoginWrongAccessCode(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Login("paolo", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUsername(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Login("nobody", "1234")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSecondLoginInvalidatesFirstToken(t *testing.T) {
	svc, _ := setupAuthService(t)

	first, err := svc.Login("paolo", "1234")
	require.NoError(t, err)

	second, err := svc.Login("paolo", "1234")
	require.NoError(t, err)

	// The older session no longer validates once the version rotates.
	_, err = svc.ValidateToken(first.Token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.ValidateToken(second.Token)
	assert.NoError(t, err)
}
