package gormstore

import (
	"time"

	"github.com/google/uuid"
)

// Column types below drive SQLite AutoMigrate only; PostgreSQL uses migrations/.

type roomModel struct {
	ID        uuid.UUID `gorm:"column:id;type:text;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Location  string    `gorm:"column:location;not null;default:''"`
	Capacity  int       `gorm:"column:capacity;not null;check:capacity >= 1"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (roomModel) TableName() string { return "rooms" }

type userModel struct {
	ID           uuid.UUID  `gorm:"column:id;type:text;primaryKey"`
	Username     string     `gorm:"column:username;not null;uniqueIndex:users_username_key"`
	Email        *string    `gorm:"column:email"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	IsStaff      bool       `gorm:"column:is_staff;not null"`
	IsActive     bool       `gorm:"column:is_active;not null"`
	LastLogin    *time.Time `gorm:"column:last_login"`
	CreatedAt    time.Time  `gorm:"column:created_at;not null"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;not null"`
}

func (userModel) TableName() string { return "users" }

type reservationModel struct {
	ID           uuid.UUID `gorm:"column:id;type:text;primaryKey"`
	UserID       uuid.UUID `gorm:"column:user_id;type:text;not null;index:reservations_user_date_idx,priority:1"`
	RoomID       uuid.UUID `gorm:"column:room_id;type:text;not null;index:reservations_room_date_idx,priority:1"`
	Date         dayDate   `gorm:"column:date;type:text;not null;index:reservations_room_date_idx,priority:2;index:reservations_user_date_idx,priority:2"`
	StartTime    clockTime `gorm:"column:start_time;type:text;not null"`
	EndTime      clockTime `gorm:"column:end_time;type:text;not null"`
	ReminderSent bool      `gorm:"column:reminder_sent;not null;default:false"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null"`

	Room roomModel `gorm:"foreignKey:RoomID;constraint:OnDelete:RESTRICT"`
	User userModel `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

func (reservationModel) TableName() string { return "reservations" }

// detailModel is a reservation joined with its room and owner.
type detailModel struct {
	ID           uuid.UUID `gorm:"column:id"`
	UserID       uuid.UUID `gorm:"column:user_id"`
	RoomID       uuid.UUID `gorm:"column:room_id"`
	Date         dayDate   `gorm:"column:date"`
	StartTime    clockTime `gorm:"column:start_time"`
	EndTime      clockTime `gorm:"column:end_time"`
	ReminderSent bool      `gorm:"column:reminder_sent"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
	RoomName     string    `gorm:"column:room_name"`
	RoomLocation string    `gorm:"column:room_location"`
	Username     string    `gorm:"column:username"`
	Email        *string   `gorm:"column:email"`
}

type bookingModel struct {
	ID        uuid.UUID `gorm:"column:id"`
	RoomID    uuid.UUID `gorm:"column:room_id"`
	Date      dayDate   `gorm:"column:date"`
	StartTime clockTime `gorm:"column:start_time"`
	EndTime   clockTime `gorm:"column:end_time"`
}
