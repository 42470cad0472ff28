package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized authentication table. Barbers and
// customers share this table and are distinguished by RoleID.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID    int       `gorm:"not null;index" json:"role_id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Avatar    string    `gorm:"type:text" json:"avatar,omitempty"`
	Bio       string    `gorm:"type:text" json:"bio,omitempty"`
	IsActive  bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role     Role      `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Services []Service `gorm:"foreignKey:BarberID" json:"services,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsBarber checks if the user holds the barber role
func (u *User) IsBarber() bool {
	return u.RoleID == RoleIDBarber
}

// IsAdmin checks if the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.RoleID == RoleIDAdmin
}
