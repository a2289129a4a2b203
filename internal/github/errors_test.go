package github

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTransient_NilError(t *testing.T) {
	assert.False(t, IsTransient(nil))
}

func TestIsTransient_ServerError(t *testing.T) {
	assert.True(t, IsTransient(&APIError{Status: 500, Message: "boom"}))
	assert.True(t, IsTransient(&APIError{Status: 503, Message: "unavailable"}))
}

func TestIsTransient_TooManyRequests(t *testing.T) {
	assert.True(t, IsTransient(&APIError{Status: http.StatusTooManyRequests, Message: "slow down"}))
}

func TestIsTransient_ClientError(t *testing.T) {
	assert.False(t, IsTransient(&APIError{Status: 404, Message: "not found"}))
	assert.False(t, IsTransient(&APIError{Status: 401, Message: "bad credentials"}))
	assert.False(t, IsTransient(&APIError{Status: 422, Message: "sha missing"}))
}

func TestIsTransient_NetworkError(t *testing.T) {
	assert.True(t, IsTransient(&net.OpError{Op: "dial", Err: errors.New("connection refused")}))
}

func TestIsTransient_ContextErrors(t *testing.T) {
	assert.False(t, IsTransient(context.Canceled))
	assert.False(t, IsTransient(context.DeadlineExceeded))
}

func TestIsConflict(t *testing.T) {
	assert.True(t, IsConflict(&APIError{Status: http.StatusConflict, Message: "conflict"}))
	assert.False(t, IsConflict(&APIError{Status: 500, Message: "boom"}))
	assert.False(t, IsConflict(errors.New("plain")))
}

func TestIsPathExists(t *testing.T) {
	assert.True(t, IsPathExists(&APIError{Status: http.StatusUnprocessableEntity, Message: "sha missing"}))
	assert.False(t, IsPathExists(&APIError{Status: http.StatusConflict, Message: "conflict"}))
}

func TestAPIError_Message(t *testing.T) {
	err := &APIError{Status: 409, Message: "conflict"}
	assert.Contains(t, err.Error(), "409")
	assert.Contains(t, err.Error(), "conflict")
}
