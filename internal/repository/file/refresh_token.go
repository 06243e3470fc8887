package file

import (
	"context"
	"time"

	"github.com/dtroode/chessacademy-server/internal/model"
)

// MaxRefreshTokens is how many refresh tokens the document keeps, across all users.
const MaxRefreshTokens = 10

var _ model.RefreshTokenStore = (*RefreshTokenRepository)(nil)

type refreshTokensDocument struct {
	Tokens []refreshTokenRecord `json:"tokens"`
}

// Records written before expiresAt existed decode with a zero expiry and count as expired.
type refreshTokenRecord struct {
	ID        string    `json:"id,omitempty"`
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (r refreshTokenRecord) toModel() model.RefreshToken {
	return model.RefreshToken{
		ID:        r.ID,
		Token:     r.Token,
		Username:  r.Username,
		CreatedAt: r.CreatedAt,
		ExpiresAt: r.ExpiresAt,
	}
}

type RefreshTokenRepository struct {
	doc *document[refreshTokensDocument]
}

func NewRefreshTokenRepository(storage model.Storage) *RefreshTokenRepository {
	return &RefreshTokenRepository{doc: newDocument[refreshTokensDocument](storage, refreshTokensKey)}
}

// Create appends the token and trims the document to the MaxRefreshTokens most
// recently created tokens.
func (r *RefreshTokenRepository) Create(ctx context.Context, token model.RefreshToken) error {
	return r.doc.update(ctx, func(doc *refreshTokensDocument) error {
		doc.Tokens = append(doc.Tokens, refreshTokenRecord{
			ID:        token.ID,
			Token:     token.Token,
			Username:  token.Username,
			CreatedAt: token.CreatedAt.UTC(),
			ExpiresAt: token.ExpiresAt.UTC(),
		})
		if n := len(doc.Tokens); n > MaxRefreshTokens {
			doc.Tokens = append([]refreshTokenRecord(nil), doc.Tokens[n-MaxRefreshTokens:]...)
		}
		return nil
	})
}

func (r *RefreshTokenRepository) GetByToken(ctx context.Context, token string) (model.RefreshToken, error) {
	doc, err := r.doc.read(ctx)
	if err != nil {
		return model.RefreshToken{}, err
	}
	for _, t := range doc.Tokens {
		if t.Token == token {
			return t.toModel(), nil
		}
	}
	return model.RefreshToken{}, model.ErrNotFound
}

// DeleteByToken removes the token. Unknown tokens are not an error.
func (r *RefreshTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	return r.doc.update(ctx, func(doc *refreshTokensDocument) error {
		kept := doc.Tokens[:0]
		for _, t := range doc.Tokens {
			if t.Token != token {
				kept = append(kept, t)
			}
		}
		if len(kept) == len(doc.Tokens) {
			return errUnchanged
		}
		doc.Tokens = kept
		return nil
	})
}

func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	var removed int64
	err := r.doc.update(ctx, func(doc *refreshTokensDocument) error {
		kept := doc.Tokens[:0]
		for _, t := range doc.Tokens {
			if t.toModel().Expired(now) {
				removed++
				continue
			}
			kept = append(kept, t)
		}
		if removed == 0 {
			return errUnchanged
		}
		doc.Tokens = kept
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
