package main

import (
	"log"

	"go-fabshop-api/internal/model"
	"go-fabshop-api/pkg/database"

	"github.com/joho/godotenv"
)

// Resets the admin worker's access code to the factory default. For when the
// code scribbled next to the till stops matching reality.
func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()

	// 3. Find admin worker
	username := "admin"
	var worker model.Worker
	if err := db.Where("username = ?", username).First(&worker).Error; err != nil {
		log.Fatalf("Worker %s not found in database: %v", username, err)
	}

	// 4. Reset code and invalidate open sessions
	newCode := "admin123"
	updates := map[string]interface{}{
		"access_code":   newCode,
		"token_version": "",
	}
	if err := db.Model(&worker).Updates(updates).Error; err != nil {
		log.Fatalf("Failed to update access code in DB: %v", err)
	}

	log.Printf("Success! Access code for %s has been reset to: %s", username, newCode)
}
