package main

import (
	"log"
	"os"
	"time"

	"pet-house-be/internal/model"
	"pet-house-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Seeds an admin account plus a few pets and campaigns for local development.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	adminEmail := os.Getenv("SEED_ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@pethouse.local"
	}

	color.Cyan("🌱 Seeding Pet House development data\n")

	color.Yellow("\n1. Admin account")
	var existing model.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		color.Green("Admin '%s' already exists, skipping", adminEmail)
	} else {
		admin := model.User{Id: uuid.New(), Email: adminEmail, Name: "Pet House Admin", Role: "Admin", Status: "Active"}
		if err := db.Create(&admin).Error; err != nil {
			color.Red("Failed: %v", err)
		} else {
			color.Green("Created admin %s", adminEmail)
		}
	}

	color.Yellow("\n2. Pets")
	pets := []model.Pet{
		{PetName: "Milo", Category: "Dog", Age: "2 years", Location: "Bandung", ShortDescription: "Friendly and house trained"},
		{PetName: "Luna", Category: "Cat", Age: "8 months", Location: "Jakarta", ShortDescription: "Loves sunny windows"},
		{PetName: "Kiwi", Category: "Bird", Age: "1 year", Location: "Surabaya", ShortDescription: "Whistles the morning news"},
	}
	for _, p := range pets {
		var count int64
		db.Model(&model.Pet{}).Where("pet_name = ? AND author_email = ?", p.PetName, adminEmail).Count(&count)
		if count > 0 {
			color.Green("Pet '%s' already exists, skipping", p.PetName)
			continue
		}
		p.Id = uuid.New()
		p.AuthorEmail = adminEmail
		p.AuthorName = "Pet House Admin"
		if err := db.Create(&p).Error; err != nil {
			color.Red("Failed to seed pet '%s': %v", p.PetName, err)
			continue
		}
		color.Green("Seeded pet %s", p.PetName)
	}

	color.Yellow("\n3. Donation campaigns")
	campaigns := []model.DonationCampaign{
		{PetName: "Milo", MaxDonation: 500, ShortDescription: "Vaccination and check-up"},
		{PetName: "Luna", MaxDonation: 1200, ShortDescription: "Eye surgery"},
	}
	for _, c := range campaigns {
		var count int64
		db.Model(&model.DonationCampaign{}).Where("pet_name = ? AND author_email = ?", c.PetName, adminEmail).Count(&count)
		if count > 0 {
			color.Green("Campaign for '%s' already exists, skipping", c.PetName)
			continue
		}
		c.Id = uuid.New()
		c.AuthorEmail = adminEmail
		c.AuthorName = "Pet House Admin"
		c.DonationLastDate = time.Now().AddDate(0, 2, 0).Truncate(24 * time.Hour)
		if err := db.Create(&c).Error; err != nil {
			color.Red("Failed to seed campaign '%s': %v", c.PetName, err)
			continue
		}
		color.Green("Seeded campaign for %s", c.PetName)
	}

	color.Cyan("\n✅ Seeding finished")
}
