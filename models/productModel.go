package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type ProductImage struct {
	gorm.Model
	Url       string `json:"url" binding:"required"`
	ProductID int    `json:"productId" binding:"required"`
}

// CarDetails is stored as a JSON column on products and cars.
type CarDetails struct {
	Model    string `json:"model"`
	Year     int    `json:"year"`
	Agency   string `json:"agency"`
	Warranty bool   `json:"warranty"`
}

type Product struct {
	gorm.Model
	Name             string         `json:"name" binding:"required"`
	Description      string         `json:"description" binding:"required"`
	Price            int64          `json:"price" binding:"required"`
	CategoryID       uint           `json:"categoryId" binding:"required"`
	Stock            int            `json:"stock"`
	CarEngine        string         `json:"carEngine"`
	CarDetails       datatypes.JSON `json:"carDetails"`
	IsForSpecificCar bool           `json:"isForSpecificCar"`
	Images           []ProductImage `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
