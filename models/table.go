package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TableType string

const (
	TableRound       TableType = "round"
	TableRectangular TableType = "rectangular"
	TableVIP         TableType = "vip"
	TableKids        TableType = "kids"
)

type Table struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string     `gorm:"not null;size:100" json:"name"`
	TableType TableType  `gorm:"default:round;size:20" json:"table_type"`
	Capacity  int        `gorm:"not null" json:"capacity"`
	Location  string     `gorm:"size:100" json:"location,omitempty"`
	PositionX *float64   `json:"position_x,omitempty"`
	PositionY *float64   `json:"position_y,omitempty"`
	Seats     []Seat     `gorm:"foreignKey:TableID" json:"seats,omitempty"`
	IsDeleted bool       `gorm:"default:false;index" json:"-"`
	DeletedAt *time.Time `json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (t *Table) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type Seat struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TableID    uuid.UUID `gorm:"type:uuid;index;not null" json:"table_id"`
	SeatNumber int       `gorm:"not null" json:"seat_number"`
	IsOccupied bool      `gorm:"default:false" json:"is_occupied"`
	IsDeleted  bool      `gorm:"default:false;index" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (s *Seat) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Request structs
type CreateTableRequest struct {
	Name      string    `json:"name" binding:"required"`
	TableType TableType `json:"table_type" binding:"omitempty,oneof=round rectangular vip kids"`
	Capacity  int       `json:"capacity" binding:"required,gt=0"`
	Location  string    `json:"location"`
	PositionX *float64  `json:"position_x"`
	PositionY *float64  `json:"position_y"`
}

type UpdateTableRequest struct {
	Name      string    `json:"name"`
	TableType TableType `json:"table_type" binding:"omitempty,oneof=round rectangular vip kids"`
	Capacity  int       `json:"capacity" binding:"omitempty,gt=0"`
	Location  string    `json:"location"`
	PositionX *float64  `json:"position_x"`
	PositionY *float64  `json:"position_y"`
}

type AssignSeatRequest struct {
	GuestID *string `json:"guest_id"` // null releases the seat
}
