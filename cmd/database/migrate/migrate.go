package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/Ifeanyi-M/Sweetopia-Backend/entities"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.MenuItem{}); err != nil {
		log.Fatalf("Error migrating menu item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ShoppingCart{}); err != nil {
		log.Fatalf("Error migrating shopping cart database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CartItem{}); err != nil {
		log.Fatalf("Error migrating cart item database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
