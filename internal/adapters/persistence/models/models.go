package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Auth & Profile Tables
// ============================================================

// User represents users table. Credentials only; role and display
// name live on the Profile row, which is written after sign-up.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// Profile represents profiles table (1:1 with users). Registration
// is not complete until this row exists.
type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Role      string    `gorm:"size:20;not null" json:"role"`
	FullName  string    `gorm:"size:100;not null" json:"full_name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Profile) TableName() string {
	return "profiles"
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role,omitempty"`
	FullName  string    `json:"full_name,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Patient-Scoped Tables
// ============================================================

// Appointment statuses
const (
	AppointmentBooked    = "BOOKED"
	AppointmentConfirmed = "CONFIRMED"
	AppointmentCompleted = "COMPLETED"
	AppointmentCancelled = "CANCELLED"
)

// Appointment represents appointments table. DoctorID references the
// static catalog, not a database row.
type Appointment struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	PublicID   string         `gorm:"size:36;uniqueIndex;not null" json:"public_id"`
	PatientID  uint           `gorm:"index;not null" json:"patient_id"`
	DoctorID   string         `gorm:"size:36;not null" json:"doctor_id"`
	DoctorName string         `gorm:"size:100" json:"doctor_name"`
	Specialty  string         `gorm:"size:60" json:"specialty"`
	Date       time.Time      `gorm:"index;not null" json:"date"`
	TimeSlot   string         `gorm:"size:20" json:"time_slot"`
	Reason     string         `gorm:"type:text" json:"reason"`
	Status     string         `gorm:"size:20;default:'BOOKED'" json:"status"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Patient User `gorm:"foreignKey:PatientID" json:"-"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Order statuses
const (
	OrderPlaced    = "PLACED"
	OrderShipped   = "SHIPPED"
	OrderDelivered = "DELIVERED"
	OrderCancelled = "CANCELLED"
)

// Order represents pharmacy orders table
type Order struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	PublicID  string         `gorm:"size:36;uniqueIndex;not null" json:"public_id"`
	UserID    uint           `gorm:"index;not null" json:"user_id"`
	Total     float64        `gorm:"type:decimal(10,2);not null" json:"total"`
	Status    string         `gorm:"size:20;default:'PLACED'" json:"status"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	User  User        `gorm:"foreignKey:UserID" json:"-"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem represents a single medicine line in an order. MedicineID
// references the static catalog.
type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OrderID      uint    `gorm:"index;not null" json:"order_id"`
	MedicineID   string  `gorm:"size:36;not null" json:"medicine_id"`
	MedicineName string  `gorm:"size:100" json:"medicine_name"`
	Quantity     int     `gorm:"not null" json:"quantity"`
	UnitPrice    float64 `gorm:"type:decimal(10,2);not null" json:"unit_price"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Profile{},
		&RefreshToken{},
		&Appointment{},
		&Order{},
		&OrderItem{},
	)
}
