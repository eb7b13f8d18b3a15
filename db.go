package main

import (
	"log"
	"os"
	"strings"

	"github.com/sofiahutsulo/finance-server/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

func initDB() {
	var err error
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN is not set. This project requires a Postgres DSN in DB_DSN.")
	}
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect postgres database:", err)
	}
	// Control schema migrations with env DB_AUTO_MIGRATE (default true). Any permission errors will be logged and ignored.
	shouldMigrate := true
	if v := os.Getenv("DB_AUTO_MIGRATE"); v != "" {
		lv := strings.ToLower(v)
		if lv == "false" || lv == "0" || lv == "no" {
			shouldMigrate = false
		}
	}
	if shouldMigrate {
		// Migrate models individually so a failure on one doesn't block others.
		// Users and categories first so the FK chain applies cleanly.
		if err := db.AutoMigrate(&models.User{}); err != nil {
			log.Printf("migration warning (users): %v", err)
		}
		if err := db.AutoMigrate(&models.Category{}); err != nil {
			log.Printf("migration warning (categories): %v", err)
		}
		if err := db.AutoMigrate(&models.Account{}); err != nil {
			log.Printf("migration warning (accounts): %v", err)
		}
		if err := db.AutoMigrate(&models.Transaction{}); err != nil {
			log.Printf("migration warning (transactions): %v", err)
		}
		if err := db.AutoMigrate(&models.Budget{}); err != nil {
			log.Printf("migration warning (budgets): %v", err)
		}
		if err := db.AutoMigrate(&models.RefreshToken{}); err != nil {
			log.Printf("migration warning (refresh_tokens): %v", err)
		}
	}
	seedDB()
}

// defaultCategories is the fixed reference set every fresh install starts
// with. Rows are marked IsSystem and cannot be removed through the API.
var defaultCategories = []models.Category{
	{Name: "Food", Type: models.TypeExpense, Icon: "restaurant", Color: "#FF6B6B", IsSystem: true},
	{Name: "Transport", Type: models.TypeExpense, Icon: "directions_car", Color: "#4ECDC4", IsSystem: true},
	{Name: "Entertainment", Type: models.TypeExpense, Icon: "movie", Color: "#95E1D3", IsSystem: true},
	{Name: "Health", Type: models.TypeExpense, Icon: "medical_services", Color: "#F38181", IsSystem: true},
	{Name: "Utilities", Type: models.TypeExpense, Icon: "home", Color: "#AA96DA", IsSystem: true},
	{Name: "Clothes", Type: models.TypeExpense, Icon: "checkroom", Color: "#FCBAD3", IsSystem: true},
	{Name: "Other", Type: models.TypeExpense, Icon: "more_horiz", Color: "#A8E6CF", IsSystem: true},
	{Name: "Salary", Type: models.TypeIncome, Icon: "payments", Color: "#4CAF50", IsSystem: true},
	{Name: "Side job", Type: models.TypeIncome, Icon: "work", Color: "#8BC34A", IsSystem: true},
	{Name: "Gift", Type: models.TypeIncome, Icon: "card_giftcard", Color: "#CDDC39", IsSystem: true},
	{Name: "Other", Type: models.TypeIncome, Icon: "more_horiz", Color: "#9CCC65", IsSystem: true},
}

func seedDB() {
	// Seed the category reference data (idempotent, keyed by name+type)
	for _, c := range defaultCategories {
		var cnt int64
		db.Model(&models.Category{}).Where("name = ? AND type = ?", c.Name, c.Type).Count(&cnt)
		if cnt == 0 {
			db.Create(&c)
		}
	}

	// Seed an admin user when ADMIN_EMAIL/ADMIN_PASSWORD are provided and no
	// user with that email exists yet.
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}
	var count int64
	db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count == 0 {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		admin := models.User{
			Name:           "Administrator",
			Email:          email,
			HashedPassword: hashedPassword,
			Role:           models.RoleAdmin,
		}
		db.Create(&admin)
		log.Println("Seeded admin user:", email)
	}
}
