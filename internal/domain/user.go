package domain

// User represents a user in the directory.
type User struct {
	UserID    string `json:"user_id" db:"user_id"`
	Email     string `json:"email" db:"email"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
}

// UserDetails is the profile snapshot attached to a pending request for
// display purposes.
type UserDetails struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Details returns the display snapshot of the user's profile.
func (u *User) Details() *UserDetails {
	if u == nil {
		return nil
	}
	return &UserDetails{
		ID:        u.UserID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
