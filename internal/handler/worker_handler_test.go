package handler

import (
	"testing"

	"go-fabshop-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerLoginEndpoint(t *testing.T) {
	env := setupTestApp(t)
	require.NoError(t, env.db.Create(&model.Worker{Username: "paolo", AccessCode: "1234"}).Error)

	var body map[string]interface{}
	status := env.request(t, "POST", "/api/worker-login", map[string]interface{}{
		"username":    "paolo",
		"access_code": "1234",
	}, &body)
	require.Equal(t, 200, status)
	assert.Equal(t, "paolo", body["username"])
	assert.NotEmpty(t, body["token"])

	// The issued token validates back to the worker.
	var worker model.WorkerResponse
	status = env.request(t, "POST", "/api/worker-login/validate", map[string]interface{}{
		"token": body["token"],
	}, &worker)
	require.Equal(t, 200, status)
	assert.Equal(t, "paolo", worker.Username)
}

func TestWorkerLoginWrongCode(t *testing.T) {
	env := setupTestApp(t)
	require.NoError(t, env.db.Create(&model.Worker{Username: "paolo", AccessCode: "1234"}).Error)

	status := env.request(t, "POST", "/api/worker-login", map[string]interface{}{
		"username":    "paolo",
		"access_code": "wrong",
	}, nil)
	assert.Equal(t, 401, status)
}

func TestWorkerLoginUnknownUser(t *testing.T) {
	env := setupTestApp(t)

	status := env.request(t, "POST", "/api/worker-login", map[string]interface{}{
		"username":    "nobody",
		"access_code": "1234",
	}, nil)
	assert.Equal(t, 401, status)
}

func TestCreateWorkerEndpoint(t *testing.T) {
	env := setupTestApp(t)

	var worker model.WorkerResponse
	status := env.request(t, "POST", "/api/workers", map[string]interface{}{
		"username":    "anna",
		"access_code": "5678",
	}, &worker)
	require.Equal(t, 201, status)
	assert.Equal(t, "anna", worker.Username)

	// Duplicate username hits the unique index.
	status = env.request(t, "POST", "/api/workers", map[string]interface{}{
		"username":    "anna",
		"access_code": "0000",
	}, nil)
	assert.Equal(t, 409, status)
}

func TestListWorkersHidesAccessCodes(t *testing.T) {
	env := setupTestApp(t)
	require.NoError(t, env.db.Create(&model.Worker{Username: "paolo", AccessCode: "1234"}).Error)

	var workers []map[string]interface{}
	status := env.request(t, "GET", "/api/workers", nil, &workers)
	require.Equal(t, 200, status)
	require.Len(t, workers, 1)
	assert.Equal(t, "paolo", workers[0]["username"])
	assert.NotContains(t, workers[0], "access_code")
	assert.NotContains(t, workers[0], "token_version")
}
