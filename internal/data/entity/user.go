package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	Base
	Username     string   `db:"username"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Phone        *string  `db:"phone"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
}

// IsAdmin reports whether the user holds the administrative capability.
// Administrators manage venues and approve bookings; they may not book.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
