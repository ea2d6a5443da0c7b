package migration

import (
	"fmt"
	"log"

	"Household-Planner-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Task{}); err != nil {
		log.Fatalf("Error migrating task database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Appointment{}); err != nil {
		log.Fatalf("Error migrating appointment database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Meal{}); err != nil {
		log.Fatalf("Error migrating meal database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ShoppingItem{}); err != nil {
		log.Fatalf("Error migrating shopping item database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
