package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/chessacademy-server/internal/mocks"
	"github.com/dtroode/chessacademy-server/internal/model"
	"github.com/dtroode/chessacademy-server/internal/testutil"
)

func TestTokenService_Issue(t *testing.T) {
	ctx := context.Background()
	expiresAt := time.Now().Add(7 * 24 * time.Hour)

	manager := servermocks.NewTokenManager(t)
	store := servermocks.NewRefreshTokenStore(t)

	manager.On("GenerateAccessToken", "mpandit").Return("access", nil).Once()
	manager.On("GenerateRefreshToken", "mpandit").Return("refresh", expiresAt, nil).Once()
	store.On("Create", ctx, mock.MatchedBy(func(rt model.RefreshToken) bool {
		return rt.Token == "refresh" && rt.Username == "mpandit" && rt.ExpiresAt.Equal(expiresAt) && rt.ID != ""
	})).Return(nil).Once()

	svc := NewTokenService(manager, store, testutil.MakeNoopLogger())

	access, refresh, err := svc.Issue(ctx, "mpandit")
	require.NoError(t, err)
	assert.Equal(t, "access", access)
	assert.Equal(t, "refresh", refresh)
}

func TestTokenService_Issue_ManagerError(t *testing.T) {
	ctx := context.Background()

	manager := servermocks.NewTokenManager(t)
	store := servermocks.NewRefreshTokenStore(t)

	manager.On("GenerateAccessToken", "mpandit").Return("", assert.AnError).Once()

	svc := NewTokenService(manager, store, testutil.MakeNoopLogger())

	_, _, err := svc.Issue(ctx, "mpandit")
	require.ErrorIs(t, err, assert.AnError)
}

func TestTokenService_Issue_StoreError(t *testing.T) {
	ctx := context.Background()

	manager := servermocks.NewTokenManager(t)
	store := servermocks.NewRefreshTokenStore(t)

	manager.On("GenerateAccessToken", "mpandit").Return("access", nil).Once()
	manager.On("GenerateRefreshToken", "mpandit").Return("refresh", time.Now(), nil).Once()
	store.On("Create", ctx, mock.Anything).Return(assert.AnError).Once()

	svc := NewTokenService(manager, store, testutil.MakeNoopLogger())

	_, _, err := svc.Issue(ctx, "mpandit")
	require.ErrorIs(t, err, assert.AnError)
}

func TestTokenService_Refresh(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		presented string
		setup     func(m *servermocks.TokenManager, s *servermocks.RefreshTokenStore)
		want      string
		wantErr   error
	}{
		{
			name:      "success",
			presented: "refresh",
			setup: func(m *servermocks.TokenManager, s *servermocks.RefreshTokenStore) {
				s.On("GetByToken", mock.Anything, "refresh").Return(model.RefreshToken{
					Token: "refresh", Username: "mpandit", ExpiresAt: now.Add(time.Hour),
				}, nil).Once()
				m.On("ParseRefreshToken", "refresh").Return("mpandit", nil).Once()
				m.On("GenerateAccessToken", "mpandit").Return("access-new", nil).Once()
			},
			want: "access-new",
		},
		{
			name:      "missing token",
			presented: "",
			setup:     func(*servermocks.TokenManager, *servermocks.RefreshTokenStore) {},
			wantErr:   model.ErrMissingToken,
		},
		{
			name:      "not in store",
			presented: "revoked",
			setup: func(_ *servermocks.TokenManager, s *servermocks.RefreshTokenStore) {
				s.On("GetByToken", mock.Anything, "revoked").Return(model.RefreshToken{}, model.ErrNotFound).Once()
			},
			wantErr: model.ErrInvalidToken,
		},
		{
			name:      "stored expiry passed",
			presented: "old",
			setup: func(_ *servermocks.TokenManager, s *servermocks.RefreshTokenStore) {
				s.On("GetByToken", mock.Anything, "old").Return(model.RefreshToken{
					Token: "old", Username: "mpandit", ExpiresAt: now.Add(-time.Second),
				}, nil).Once()
				s.On("DeleteByToken", mock.Anything, "old").Return(nil).Once()
			},
			wantErr: model.ErrTokenExpired,
		},
		{
			name:      "bad signature",
			presented: "forged",
			setup: func(m *servermocks.TokenManager, s *servermocks.RefreshTokenStore) {
				s.On("GetByToken", mock.Anything, "forged").Return(model.RefreshToken{
					Token: "forged", Username: "mpandit", ExpiresAt: now.Add(time.Hour),
				}, nil).Once()
				m.On("ParseRefreshToken", "forged").Return("", model.ErrInvalidToken).Once()
			},
			wantErr: model.ErrInvalidToken,
		},
		{
			name:      "owner mismatch",
			presented: "refresh",
			setup: func(m *servermocks.TokenManager, s *servermocks.RefreshTokenStore) {
				s.On("GetByToken", mock.Anything, "refresh").Return(model.RefreshToken{
					Token: "refresh", Username: "pburli", ExpiresAt: now.Add(time.Hour),
				}, nil).Once()
				m.On("ParseRefreshToken", "refresh").Return("mpandit", nil).Once()
			},
			wantErr: model.ErrInvalidToken,
		},
		{
			name:      "store failure",
			presented: "refresh",
			setup: func(_ *servermocks.TokenManager, s *servermocks.RefreshTokenStore) {
				s.On("GetByToken", mock.Anything, "refresh").Return(model.RefreshToken{}, assert.AnError).Once()
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			manager := servermocks.NewTokenManager(t)
			store := servermocks.NewRefreshTokenStore(t)
			tt.setup(manager, store)

			svc := NewTokenService(manager, store, testutil.MakeNoopLogger())
			svc.now = func() time.Time { return now }

			got, err := svc.Refresh(context.Background(), tt.presented)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenService_Logout(t *testing.T) {
	ctx := context.Background()

	manager := servermocks.NewTokenManager(t)
	store := servermocks.NewRefreshTokenStore(t)
	store.On("DeleteByToken", ctx, "refresh").Return(nil).Once()
	store.On("DeleteByToken", ctx, "unknown").Return(model.ErrNotFound).Once()
	store.On("DeleteByToken", ctx, "broken").Return(assert.AnError).Once()

	svc := NewTokenService(manager, store, testutil.MakeNoopLogger())

	require.NoError(t, svc.Logout(ctx, "refresh"))
	require.NoError(t, svc.Logout(ctx, "unknown"))
	require.NoError(t, svc.Logout(ctx, ""))
	require.ErrorIs(t, svc.Logout(ctx, "broken"), assert.AnError)
}

func TestTokenService_CleanupExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	manager := servermocks.NewTokenManager(t)
	store := servermocks.NewRefreshTokenStore(t)
	store.On("DeleteExpired", ctx, now).Return(int64(3), nil).Once()

	svc := NewTokenService(manager, store, testutil.MakeNoopLogger())
	svc.now = func() time.Time { return now }

	n, err := svc.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestTokenService_GetUsername(t *testing.T) {
	ctx := context.Background()

	manager := servermocks.NewTokenManager(t)
	store := servermocks.NewRefreshTokenStore(t)
	manager.On("ParseAccessToken", "access").Return("mpandit", nil).Once()
	manager.On("ParseAccessToken", "expired").Return("", model.ErrTokenExpired).Once()

	svc := NewTokenService(manager, store, testutil.MakeNoopLogger())

	got, err := svc.GetUsername(ctx, "access")
	require.NoError(t, err)
	assert.Equal(t, "mpandit", got)

	_, err = svc.GetUsername(ctx, "expired")
	require.ErrorIs(t, err, model.ErrTokenExpired)

	_, err = svc.GetUsername(ctx, "")
	require.ErrorIs(t, err, model.ErrMissingToken)
}
