package domain

// Global roles assigned at registration time. The very first registered user
// becomes the project administrator; everyone after that joins as a plain
// member.
const (
	RoleAdmin  = "프로젝트 관리자"
	RoleMember = "팀원"

	// RoleTeamLead is a per-project role. The project creator holds it and it
	// grants edit/delete rights over other members' comments.
	RoleTeamLead = "팀장"
)

// User represents a registered account.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
