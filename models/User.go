package models

import "gorm.io/gorm"

// User is a staff account (front desk, managers, admins). Hotel guests are a
// separate entity, see Guest.
type User struct {
	gorm.Model
	Name     string `json:"name" gorm:"size:120;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;size:120;not null"`
	Password string `json:"-"`
	Role     string `json:"role" gorm:"type:varchar(20);default:front_desk;index"` // admin, manager, front_desk
}
