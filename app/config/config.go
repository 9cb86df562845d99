package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB        *sql.DB
	Port      string
	JWTSecret string
	FineRules FineRules
}

// FineRules controls late-fee accrual on overdue fines.
type FineRules struct {
	LateFeePercentPerDay float64
	GracePeriodDays      int
	MaxLateFeeDays       int
}

var AppConfig *Config

// InitDB loads configuration and opens the PostgreSQL connection pool.
func InitDB() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	host := getEnv("DB_HOST", "localhost")
	port := getEnvInt("DB_PORT", 5432)
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "")
	dbname := getEnv("DB_NAME", "traffic_violations")
	sslmode := getEnv("DB_SSLMODE", "disable")

	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=%s", host, port, user, dbname, sslmode)
	if password != "" {
		psqlInfo += " password=" + password
	}
	log.Printf("Connecting to PostgreSQL at %s:%d/%s", host, port, dbname)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err = db.Ping(); err != nil {
		log.Printf("Database connection failed: %v", err)
		log.Println("Create the database and apply schema.sql, e.g.:")
		log.Println("  createdb traffic_violations")
		log.Println("  go run ./cmd/migrate")
		log.Fatal("Cannot establish database connection")
	}

	AppConfig = &Config{
		DB:        db,
		Port:      getEnv("PORT", "8080"),
		JWTSecret: getEnv("JWT_SECRET", "traffic-violations-secret-key"),
		FineRules: FineRules{
			LateFeePercentPerDay: getEnvFloat("LATE_FEE_PERCENT", 0.05),
			GracePeriodDays:      getEnvInt("LATE_FEE_GRACE_DAYS", 7),
			MaxLateFeeDays:       getEnvInt("LATE_FEE_MAX_DAYS", 30),
		},
	}
	log.Println("Database connected successfully")
}

// GetDB returns the shared connection pool.
func GetDB() *sql.DB {
	return AppConfig.DB
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("Invalid value for %s, using default %d", key, fallback)
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("Invalid value for %s, using default %v", key, fallback)
	}
	return fallback
}
