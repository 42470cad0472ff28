package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// statusTransitions is the closed set of legal lifecycle moves.
// Completed and cancelled are terminal.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusPending:   {AppointmentStatusConfirmed, AppointmentStatusCancelled},
	AppointmentStatusConfirmed: {AppointmentStatusCompleted, AppointmentStatusCancelled},
}

// IsValid reports whether s is one of the four known statuses
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is permitted from s
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}

// CanTransitionTo reports whether the move s -> next is in the transition table
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PhotoKind distinguishes before/after photo sequences
type PhotoKind string

const (
	PhotoKindBefore PhotoKind = "before"
	PhotoKindAfter  PhotoKind = "after"
)

// IsValid reports whether k is a known photo kind
func (k PhotoKind) IsValid() bool {
	return k == PhotoKindBefore || k == PhotoKindAfter
}

// Appointment represents one scheduled engagement between a customer
// and a barber for one or more services
type Appointment struct {
	ID         uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CustomerID uuid.UUID         `gorm:"type:uuid;not null;index" json:"customer_id"`
	BarberID   uuid.UUID         `gorm:"type:uuid;not null;index" json:"barber_id"`
	Date       time.Time         `gorm:"type:date;not null;index" json:"date"`
	Time       string            `gorm:"type:varchar(5);not null" json:"time"` // HH:MM
	TotalPrice decimal.Decimal   `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Status     AppointmentStatus `gorm:"type:appointment_status;not null;default:'pending';index" json:"status"`
	Note       string            `gorm:"type:text" json:"note,omitempty"`
	CreatedAt  time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Customer User               `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Barber   User               `gorm:"foreignKey:BarberID" json:"barber,omitempty"`
	Items    []AppointmentItem  `gorm:"foreignKey:AppointmentID" json:"items,omitempty"`
	Photos   []AppointmentPhoto `gorm:"foreignKey:AppointmentID" json:"photos,omitempty"`
	Review   *Review            `gorm:"foreignKey:AppointmentID" json:"review,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if the appointment is in pending status
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsCompleted checks if the appointment is completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// PhotosOfKind returns the photos of one sequence, in upload order
func (a *Appointment) PhotosOfKind(kind PhotoKind) []AppointmentPhoto {
	var photos []AppointmentPhoto
	for _, p := range a.Photos {
		if p.Kind == kind {
			photos = append(photos, p)
		}
	}
	return photos
}

// AppointmentItem is one (service, quantity) line in the appointment's
// service selection. UnitPrice is a snapshot of the catalog price taken
// when the total was computed; later catalog edits do not change it.
type AppointmentItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID uuid.UUID       `gorm:"type:uuid;not null;index" json:"appointment_id"`
	ServiceID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"service_id"`
	Quantity      int             `gorm:"not null;default:1" json:"quantity"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Position      int             `gorm:"not null;default:0" json:"position"`

	// Relationships
	Service Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

func (AppointmentItem) TableName() string {
	return "appointment_items"
}

// Subtotal returns unit price times quantity
func (i *AppointmentItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// AppointmentPhoto is one entry in a before/after photo sequence.
// Rows are appended, never rewritten.
type AppointmentPhoto struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID uuid.UUID `gorm:"type:uuid;not null;index" json:"appointment_id"`
	Kind          PhotoKind `gorm:"type:varchar(10);not null;index" json:"kind"`
	URL           string    `gorm:"type:text;not null" json:"url"`
	Description   string    `gorm:"type:text" json:"description,omitempty"`
	Position      int       `gorm:"not null;default:0" json:"position"`
	UploadedAt    time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (AppointmentPhoto) TableName() string {
	return "appointment_photos"
}
