package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpcontext "github.com/dtroode/chessacademy-server/internal/api/http/context"
	"github.com/dtroode/chessacademy-server/internal/api/http/handler/mocks"
	"github.com/dtroode/chessacademy-server/internal/model"
	"github.com/dtroode/chessacademy-server/internal/testutil"
)

func TestUser_List(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	svc.On("ListUsers", mock.Anything).Return([]model.User{
		{ID: "1", Username: "mpandit", PasswordHash: "should-not-leak", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}, nil).Once()

	h := NewUser(svc, httpcontext.NewManager(), testutil.MakeNoopLogger())
	rec := httptest.NewRecorder()
	h.List(rec, newRequest(http.MethodGet, "/api/users", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "should-not-leak")
	users := decodeBody(t, rec)["users"].([]any)
	require.Len(t, users, 1)
	user := users[0].(map[string]any)
	assert.Equal(t, "mpandit", user["name"])
	assert.Equal(t, "mpandit", user["username"])
}

func TestUser_Add(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
	}{
		{name: "created", body: `{"username":"coach1","password":"longenough"}`, wantCode: http.StatusOK},
		{name: "legacy name field", body: `{"name":"coach1","password":"longenough"}`, wantCode: http.StatusOK},
		{name: "duplicate", body: `{"username":"coach1","password":"longenough"}`, err: model.ErrConflict, wantCode: http.StatusConflict},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewAuthService(t)
			svc.On("AddUser", mock.Anything, "coach1", "longenough").Return(model.User{}, tt.err).Once()

			h := NewUser(svc, httpcontext.NewManager(), testutil.MakeNoopLogger())
			rec := httptest.NewRecorder()
			h.Add(rec, asUser(newRequest(http.MethodPost, "/api/users", tt.body), "mpandit"))

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.err != nil {
				assert.Equal(t, "User already exists", decodeBody(t, rec)["error"])
			}
		})
	}
}
