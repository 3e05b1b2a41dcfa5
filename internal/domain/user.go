package domain

import "time"

type RoleName = string

const (
	RoleAdmin RoleName = "admin"
	RoleGuru  RoleName = "guru"
	RoleSiswa RoleName = "siswa"
)

type Role struct {
	Id          int      `json:"id"`
	Name        RoleName `json:"name"`
	Description string   `json:"description"`
}

type User struct {
	Id        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Profile struct {
	UserId         string `json:"user_id"`
	FullName       string `json:"full_name"`
	IdentityNumber string `json:"identity_number,omitempty"`
	ClassGrade     string `json:"class_grade,omitempty"`
	Bio            string `json:"bio,omitempty"`
}

type PublicProfile struct {
	Username   string    `json:"username"`
	Role       RoleName  `json:"role"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	ClassGrade string    `json:"class_grade,omitempty"`
	Bio        string    `json:"bio,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// SessionUser is the signed-in identity reconstructed from the access token,
// carried through request context and session state.
type SessionUser struct {
	Id        string
	Username  string
	Role      RoleName
	AvatarURL string
}

func (u *SessionUser) IsAdmin() bool {
	return u.Role == RoleAdmin
}
