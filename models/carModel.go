package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Car struct {
	gorm.Model
	UserID       uint           `json:"userId" gorm:"uniqueIndex:idx_engine_user"`
	EngineNumber string         `json:"engineNumber" gorm:"uniqueIndex:idx_engine_user;size:64"`
	Details      datatypes.JSON `json:"details"`
	Mileage      int            `json:"mileage"`
	LogoURL      string         `json:"logoUrl"`
}

type CarBrand struct {
	gorm.Model
	Name    string `json:"name" binding:"required"`
	LogoURL string `json:"logoUrl"`
}
