package repository

import (
	"database/sql"
	"fmt"

	"github.com/CTF179/photocomp/internal/domain"
)

// UserRepository handles user directory lookups.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID retrieves a user by ID, or nil if the user does not exist.
// It returns an error only for database failures, not for missing rows.
func (r *UserRepository) GetByID(userID string) (*domain.User, error) {
	query := `
		SELECT user_id, email, first_name, last_name
		FROM users
		WHERE user_id = $1
	`
	var user domain.User
	err := r.db.QueryRow(query, userID).Scan(&user.UserID, &user.Email, &user.FirstName, &user.LastName)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
