// scripts/seed_student.go
package main

import (
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"github.com/ramya05916-rgb/Hostel-Leave-Management-System/auth"
	"github.com/ramya05916-rgb/Hostel-Leave-Management-System/config"
	"github.com/ramya05916-rgb/Hostel-Leave-Management-System/database"
	"github.com/ramya05916-rgb/Hostel-Leave-Management-System/models"
)

func main() {
	cfg := config.Load()
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	email := "demo@hostel.local"
	password := "demo1234"

	var existing models.Student
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		fmt.Println("demo student already exists:", email)
		os.Exit(0)
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("failed to query students: %v", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	s := models.Student{
		Name:     "Demo Student",
		Email:    email,
		Password: hash,
		Hostel:   "H1",
		Year:     "2",
	}
	if err := db.Create(&s).Error; err != nil {
		log.Fatalf("failed to insert student: %v", err)
	}

	fmt.Println("demo student created")
	fmt.Println("   Email:", email)
	fmt.Println("   Password:", password)
}
