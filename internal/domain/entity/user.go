package entity

import "time"

// User owns todos exclusively; removing a user removes every todo it owns.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:80;uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:128;not null"`
	CreatedAt    time.Time `json:"createdDate"`
	Todos        []Todo    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
