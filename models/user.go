package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Email     string    `gorm:"uniqueIndex" json:"email"`
	Password  string    `json:"password,omitempty"`
	Role      string    `gorm:"default:'member'" json:"role"`
	ManagerID *uint     `json:"manager_id"`
	CreatedAt time.Time `json:"created_at"`
}
