package repository

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
)

const (
	getUserByEmailSQL = `SELECT * FROM users
WHERE LOWER(email) = LOWER($1);`

	getUserByIDSQL = `SELECT * FROM users
WHERE id = $1;`

	insertUserSQL = `INSERT INTO users (name, email, password)
VALUES ($1, $2, $3)
RETURNING *;`
)

type UserRepository struct {
	exec Executor
}

func NewUserRepository(exec Executor) *UserRepository {
	return &UserRepository{exec: exec}
}

// GetUserByEmail returns the user whose email matches, ignoring case.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return queryOne[model.User](ctx, r.exec, "get user by email", "users", getUserByEmailSQL, email)
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	return queryOne[model.User](ctx, r.exec, "get user by id", "users", getUserByIDSQL, id)
}

// AddUser inserts u and returns the stored row with its new id.
func (r *UserRepository) AddUser(ctx context.Context, u model.NewUser) (*model.User, error) {
	return insertOne[model.User](ctx, r.exec, "add user", insertUserSQL, u.Name, u.Email, u.Password)
}
