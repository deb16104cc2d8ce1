package domain

// AccessType is the role tier stored for a person.
type AccessType int

const (
	AccessRegular       AccessType = 0
	AccessSeniorManager AccessType = 1
	AccessManager       AccessType = 2
)

// IsManagerTier reports whether the access type grants use of the application.
func (a AccessType) IsManagerTier() bool {
	return a == AccessSeniorManager || a == AccessManager
}

// User represents the person behind the current session.
type User struct {
	UserID      int64      `json:"userID"`
	DisplayName string     `json:"displayName"`
	AccessType  AccessType `json:"accessType"`
	IsSuperUser bool       `json:"isSuperUser"`
}

// AccessGrant is the raw result of the server-side permission check.
type AccessGrant struct {
	AccessType  AccessType
	IsSuperUser bool
}

// Permitted reports whether the grant allows the session to proceed.
func (g AccessGrant) Permitted() bool {
	return g.AccessType.IsManagerTier() || g.IsSuperUser
}
