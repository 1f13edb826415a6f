package model

// UserType identifies the role a platform account holds.
type UserType string

const (
	UserTypeStudent UserType = "student"
	UserTypeTeacher UserType = "teacher"
	UserTypeAdmin   UserType = "admin"
)

// UserProfile is the authenticated user's profile as served by the
// platform backend. It is an immutable snapshot between refreshes.
type UserProfile struct {
	ID          int      `json:"id"`
	FullName    string   `json:"full_name"`
	UserType    UserType `json:"user_type"`
	GroupNumber string   `json:"group_number,omitempty"`
	Email       string   `json:"email"`
}

// IsZero reports whether no profile has been cached yet.
func (p UserProfile) IsZero() bool {
	return p.FullName == "" && p.Email == "" && p.UserType == ""
}

// Session is the authenticated-user context: a bearer credential plus
// the cached profile. If Token is empty, no authenticated operation
// may proceed.
type Session struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}
