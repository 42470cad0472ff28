package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is the single rating+comment slot of a completed appointment.
// The unique index on AppointmentID enforces one review per appointment;
// writing again replaces rating and comment in place.
type Review struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"appointment_id"`
	Rating        int       `gorm:"type:smallint;not null" json:"rating"`
	Comment       string    `gorm:"type:text;not null" json:"comment"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}
