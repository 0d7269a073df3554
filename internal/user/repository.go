package user

import (
	"database/sql"
	"errors"
	"fmt"
)

var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	createUser(user *User) error
	getUserByID(id string) (*User, error)
	getUserByLoginOrEmail(loginOrEmail string) (*User, error)
	userExistsByLoginOrEmail(login, email string) (*User, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) Repository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) createUser(user *User) error {
	query := `
		INSERT INTO users (email, login, password_hash, two_factor_enabled, created_at, updated_at)
		VALUES ($1, $2, $3, FALSE, NOW(), NOW())
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(query, user.Email, user.Login, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("could not create user: %v", err)
	}
	return nil
}

func (r *userRepository) getUserByID(id string) (*User, error) {
	query := `
		SELECT id, email, login, password_hash, two_factor_enabled, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.db.QueryRow(query, id))
}

func (r *userRepository) getUserByLoginOrEmail(loginOrEmail string) (*User, error) {
	query := `
		SELECT id, email, login, password_hash, two_factor_enabled, created_at, updated_at
		FROM users
		WHERE login = $1 OR email = $1
	`
	return r.scanUser(r.db.QueryRow(query, loginOrEmail))
}

func (r *userRepository) userExistsByLoginOrEmail(login, email string) (*User, error) {
	query := `
		SELECT id, email, login, password_hash, two_factor_enabled, created_at, updated_at
		FROM users
		WHERE login = $1 OR email = $2
	`
	return r.scanUser(r.db.QueryRow(query, login, email))
}

func (r *userRepository) scanUser(row *sql.Row) (*User, error) {
	var user User
	err := row.Scan(&user.ID, &user.Email, &user.Login, &user.PasswordHash, &user.TwoFactorEnabled, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not find user: %v", err)
	}
	return &user, nil
}
