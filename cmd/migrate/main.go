package main

import (
	"log"
	"os"

	"pet-house-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	// 3. Extensions (gen_random_uuid)
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Printf("Warn: Failed to create pgcrypto extension: %v. Continuing...", err)
	}

	// 4. AutoMigrate
	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Partial unique index: at most one accepted request per pet
	indexSQL := `CREATE UNIQUE INDEX IF NOT EXISTS ux_adoption_requests_accepted_pet
		ON adoption_requests (pet_id) WHERE status = 'Accepted';`
	if err := db.Exec(indexSQL).Error; err != nil {
		log.Printf("Warn: Failed to create accepted-pet index: %v", err)
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
