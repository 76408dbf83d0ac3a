package initializers

import (
	"log"

	"github.com/autocare-store/autocare-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(
		&models.User{},
		&models.Token{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.Package{},
		&models.Car{},
		&models.CarBrand{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Wishlist{},
		&models.WishlistItem{},
		&models.Message{},
	)
	log.Println("Database synced successfully.")
}
