package file

import (
	"context"
	"time"

	"github.com/dtroode/chessacademy-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type usersDocument struct {
	Users []userRecord `json:"users"`
}

type userRecord struct {
	ID           docID     `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r userRecord) toModel() model.User {
	return model.User{
		ID:           string(r.ID),
		Username:     r.Name,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

type UserRepository struct {
	doc *document[usersDocument]
}

func NewUserRepository(storage model.Storage) *UserRepository {
	return &UserRepository{doc: newDocument[usersDocument](storage, usersKey)}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	doc, err := r.doc.read(ctx)
	if err != nil {
		return model.User{}, err
	}
	for _, u := range doc.Users {
		if u.Name == username {
			return u.toModel(), nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	err := r.doc.update(ctx, func(doc *usersDocument) error {
		for _, u := range doc.Users {
			if u.Name == user.Username {
				return model.ErrConflict
			}
		}
		doc.Users = append(doc.Users, userRecord{
			ID:           docID(user.ID),
			Name:         user.Username,
			PasswordHash: user.PasswordHash,
			CreatedAt:    user.CreatedAt.UTC(),
		})
		return nil
	})
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	doc, err := r.doc.read(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0, len(doc.Users))
	for _, u := range doc.Users {
		users = append(users, u.toModel())
	}
	return users, nil
}
