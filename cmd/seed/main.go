package main

import (
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"jd-portal-api/config"
	"jd-portal-api/models"
)

// Seeds the lookup tables and demo accounts. Safe to run repeatedly.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.InitDB()
	db := config.DB

	roles := []models.Role{
		{RoleID: models.RoleHR, Role: "HR"},
		{RoleID: models.RoleManager, Role: "Manager"},
		{RoleID: models.RoleAdmin, Role: "Admin"},
	}
	for _, role := range roles {
		if err := db.Where("role_id = ?", role.RoleID).FirstOrCreate(&role).Error; err != nil {
			log.Fatalf("Failed to seed role %s: %v", role.Role, err)
		}
	}

	users := []struct {
		FirstName  string
		LastName   string
		Email      string
		Password   string
		Department string
		RoleID     int
	}{
		{"Alice", "Nguyen", "hr@example.com", "hr123456", "Human Resources", models.RoleHR},
		{"Bob", "Tran", "manager@example.com", "manager123", "Engineering", models.RoleManager},
		{"Carol", "Le", "admin@example.com", "admin123", "Operations", models.RoleAdmin},
	}
	for _, u := range users {
		var existing models.User
		err := db.Where("email = ?", u.Email).First(&existing).Error
		if err == nil {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", u.Email, err)
		}

		user := models.User{
			FirstName:  u.FirstName,
			LastName:   u.LastName,
			Email:      u.Email,
			Password:   string(hash),
			Department: u.Department,
			RoleID:     u.RoleID,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("Failed to seed user %s: %v", u.Email, err)
		}
		log.Printf("Seeded user %s", u.Email)
	}

	interviewers := []models.Interviewer{
		{Name: "John Doe", Role: "Technical Lead", IsActive: true},
		{Name: "Jane Smith", Role: "Senior Developer", IsActive: true},
		{Name: "Mike Johnson", Role: "HR Manager", IsActive: true},
		{Name: "Sarah Williams", Role: "Project Manager", IsActive: true},
	}
	for _, iv := range interviewers {
		if err := db.Where("name = ?", iv.Name).FirstOrCreate(&iv).Error; err != nil {
			log.Fatalf("Failed to seed interviewer %s: %v", iv.Name, err)
		}
	}

	log.Println("Seeding complete")
}
