package models

import "gorm.io/gorm"

// Message is a contact-form submission.
type Message struct {
	gorm.Model
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Description string `json:"description" binding:"required"`
}
