package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID        uuid.UUID      `gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	UserName      string         `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserEmail     string         `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex" json:"user_email"`
	UserPassword  string         `gorm:"column:user_password;type:varchar(255);not null" json:"-"`
	UserIsActive  bool           `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	UserCreatedAt time.Time      `gorm:"column:user_created_at;not null;default:now()" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;not null;default:now()" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.UserCreatedAt.IsZero() {
		m.UserCreatedAt = now
	}
	m.UserUpdatedAt = now
	return nil
}

func (m *UserModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.UserUpdatedAt = time.Now()
	return nil
}
