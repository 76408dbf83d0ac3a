package models

import "gorm.io/gorm"

// Package is a bundle of products sold as a single offering with its own
// price. In the cart and in orders it is referenced as one line.
type Package struct {
	gorm.Model
	Name        string    `json:"name" binding:"required"`
	Price       int64     `json:"price" binding:"required"`
	Mileage     int       `json:"mileage" binding:"required"`
	Description string    `json:"description"`
	Products    []Product `json:"products" gorm:"many2many:package_products"`
}
