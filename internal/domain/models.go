package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a platform user. The analytics core only counts users;
// credentials and sessions live in the external auth service.
type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
	Role      UserRole  `db:"role" json:"role"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Site represents a bookable venue.
// Rating is a cached average over approved reviews; it is written only by
// rating propagation and is not authoritative.
type Site struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Description string     `db:"description" json:"description"`
	Location    string     `db:"location" json:"location"`
	Country     string     `db:"country" json:"country"`
	City        string     `db:"city" json:"city"`
	Price       float64    `db:"price" json:"price"`
	MaxCapacity int        `db:"max_capacity" json:"max_capacity"`
	Rating      float64    `db:"rating" json:"rating"`
	IsActive    bool       `db:"is_active" json:"is_active"`
	ManagerID   *uuid.UUID `db:"manager_id" json:"manager_id"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// Booking represents a visit reservation for a site.
// UserID is nil for guest bookings. TotalPrice is nil until priced; a nil
// price contributes 0 to every revenue computation.
type Booking struct {
	ID              uuid.UUID     `db:"id" json:"id"`
	Reference       string        `db:"reference" json:"reference"`
	SiteID          uuid.UUID     `db:"site_id" json:"site_id"`
	UserID          *uuid.UUID    `db:"user_id" json:"user_id"`
	StartDate       time.Time     `db:"start_date" json:"start_date"`
	NumberOfPeople  int           `db:"number_of_people" json:"number_of_people"`
	TotalPrice      *float64      `db:"total_price" json:"total_price"`
	Status          BookingStatus `db:"status" json:"status"`
	PaymentMethod   string        `db:"payment_method" json:"payment_method"`
	PaymentProvider string        `db:"payment_provider" json:"payment_provider"`
	PaymentStatus   string        `db:"payment_status" json:"payment_status"`
	VisitorName     string        `db:"visitor_name" json:"visitor_name"`
	VisitorEmail    string        `db:"visitor_email" json:"visitor_email"`
	VisitorPhone    string        `db:"visitor_phone" json:"visitor_phone"`
	Notes           string        `db:"notes" json:"notes"`
	CreatedAt       time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at" json:"updated_at"`
}

// Review represents a visitor review of a site.
type Review struct {
	ID        uuid.UUID    `db:"id" json:"id"`
	SiteID    uuid.UUID    `db:"site_id" json:"site_id"`
	UserID    *uuid.UUID   `db:"user_id" json:"user_id"`
	Rating    int          `db:"rating" json:"rating"`
	Comment   string       `db:"comment" json:"comment"`
	Status    ReviewStatus `db:"status" json:"status"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt time.Time    `db:"updated_at" json:"updated_at"`
}
