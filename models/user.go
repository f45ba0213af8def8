package models

import "time"

type User struct {
	UID       uint      `gorm:"primaryKey;column:u_id" json:"id"`
	Username  string    `gorm:"size:50;not null;unique" json:"username"`
	Email     string    `gorm:"size:100;not null;unique" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"updatedAt"`
}
