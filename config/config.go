package config

import (
	"log"
	"os"
	"strings"

	"github.com/sakibmorshed/assignment-11-new-serverside/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "chef_marketplace_super_secret_2024"))

// PaymentSecretKey authenticates calls to the payment provider
var PaymentSecretKey = os.Getenv("PAYMENT_SECRET_KEY")

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// AllowedOrigins returns the CORS origins from env, "*" when unset
func AllowedOrigins() []string {
	raw := getEnv("ALLOWED_ORIGINS", "*")
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// InitDB opens the shared database handle and migrates all models.
// Safe to call more than once: subsequent calls are no-ops.
func InitDB() {
	if DB != nil {
		return
	}

	dsn := getEnv("DATABASE_URL", "chef_marketplace.db")
	dialector := dialectorFor(dsn)

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.RoleRequest{},
		&models.Meal{},
		&models.Order{},
		&models.Review{},
		&models.Favorite{},
		&models.Payment{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated successfully")
}

func dialectorFor(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return postgres.Open(dsn)
	}
	return sqlite.Open(dsn)
}
