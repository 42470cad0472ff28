package entity

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDAdmin    = 1
	RoleIDBarber   = 2
	RoleIDCustomer = 3
)

// RoleNames constants
const (
	RoleAdmin    = "admin"
	RoleBarber   = "barber"
	RoleCustomer = "customer"
)

// RoleNameFor maps a role id to its canonical name
func RoleNameFor(roleID int) string {
	switch roleID {
	case RoleIDAdmin:
		return RoleAdmin
	case RoleIDBarber:
		return RoleBarber
	case RoleIDCustomer:
		return RoleCustomer
	}
	return ""
}
