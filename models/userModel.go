package models

import "gorm.io/gorm"

const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super-admin"
)

type User struct {
	gorm.Model
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" gorm:"uniqueIndex;size:191" binding:"required,email"`
	Mobile     string `json:"mobile" gorm:"uniqueIndex;size:32" binding:"required"`
	Password   string `json:"password" binding:"required,min=8"`
	Role       string `json:"role"`
	IsDeleted  bool   `json:"isDeleted"`
	ForgetCode string `json:"-"`
}

// Token is the server-side record of an issued JWT. Logout flips IsValid
// so the token stops passing the auth middleware even before it expires.
type Token struct {
	gorm.Model
	UserID  uint   `json:"userId"`
	Token   string `json:"token" gorm:"index:,length:191"`
	IsValid bool   `json:"isValid"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Principal is the authenticated caller, resolved once by the auth
// middleware and passed to handlers explicitly instead of raw JWT claims.
type Principal struct {
	UserID uint
	Email  string
	Role   string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin || p.Role == RoleSuperAdmin
}

func (p Principal) IsSuperAdmin() bool {
	return p.Role == RoleSuperAdmin
}
