package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/jayantiyadav04/traffic-violation-management-system/app/config"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/database"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/models"
	"github.com/jayantiyadav04/traffic-violation-management-system/app/routes/auth"
)

type seedUser struct {
	username string
	password string
	fullName string
	role     models.Role
	email    string
	phone    string
}

func main() {
	// Initialize database connection
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}
	defer db.Close()

	seedUsers := []seedUser{
		{"admin", "admin123", "System Administrator", models.RoleAdmin, "admin@traffic.gov", "0700000001"},
		{"officer1", "officer123", "John Kamau", models.RoleOfficer, "j.kamau@traffic.gov", "0700000002"},
		{"citizen1", "citizen123", "Mary Achieng", models.RoleCitizen, "mary.achieng@example.com", "0700000003"},
	}

	for _, su := range seedUsers {
		if existing, err := database.GetUserByUsername(db, su.username); err == nil && existing != nil {
			log.Printf("User %s already exists, skipping", su.username)
			continue
		}

		hashed, err := auth.HashPassword(su.password)
		if err != nil {
			log.Fatalf("Error hashing password for %s: %v", su.username, err)
		}

		user := &models.User{
			Username: su.username,
			Password: hashed,
			FullName: su.fullName,
			Role:     su.role,
			Email:    su.email,
			Phone:    su.phone,
		}
		if err := database.CreateUser(db, user); err != nil {
			log.Fatalf("Error creating user %s: %v", su.username, err)
		}
		fmt.Printf("User created: %s (%s)\n", user.Username, user.Role)
	}

	seedReferenceData(db)
	log.Println("Seeding completed")
}

func seedReferenceData(db *sql.DB) {
	types := []struct {
		name     string
		baseFine string
		desc     string
	}{
		{"Speeding", "500.00", "Exceeding the posted speed limit"},
		{"Illegal Parking", "200.00", "Parking in a restricted zone"},
		{"Red Light Violation", "1000.00", "Crossing an intersection against a red signal"},
		{"No Seatbelt", "300.00", "Driving without a fastened seatbelt"},
		{"Expired License", "800.00", "Driving with an expired license"},
	}
	for _, t := range types {
		_, err := db.Exec(`INSERT INTO violation_types (type_name, base_fine, description)
						   VALUES ($1, $2, $3) ON CONFLICT (type_name) DO NOTHING`,
			t.name, t.baseFine, t.desc)
		if err != nil {
			log.Fatalf("Error seeding violation type %s: %v", t.name, err)
		}
	}

	areas := []struct{ name, city string }{
		{"Central Business District", "Nairobi"},
		{"Westlands", "Nairobi"},
		{"Industrial Area", "Nairobi"},
		{"Nyali", "Mombasa"},
		{"Milimani", "Kisumu"},
	}
	for _, a := range areas {
		_, err := db.Exec(`INSERT INTO areas (area_name, city)
						   VALUES ($1, $2) ON CONFLICT (area_name, city) DO NOTHING`,
			a.name, a.city)
		if err != nil {
			log.Fatalf("Error seeding area %s: %v", a.name, err)
		}
	}
}
