package config

import (
	"fmt"
	"log"

	"healthtrack/models"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`

	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	S3Bucket string `envconfig:"S3_BUCKET"`
	S3Region string `envconfig:"S3_REGION"`

	// Optional; view caching is disabled when empty.
	RedisAddr string `envconfig:"REDIS_ADDR"`

	FollowRequestTTLHours int `envconfig:"FOLLOW_REQUEST_TTL_HOURS" default:"72"`
}

var DB *gorm.DB

// Load reads .env (if present) and the process environment.
func Load() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return &cfg
}

func InitDB(cfg *Config) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Plan{},
		&models.Meal{},
		&models.Exercise{},
		&models.WorkoutPlan{},
		&models.WorkoutPlanExercise{},
		&models.Workout{},
		&models.WorkoutExercise{},
		&models.WaterPlan{},
		&models.WaterEntry{},
		&models.JournalEntry{},
		&models.Tag{},
		&models.FollowRequest{},
		&models.Follow{},
		&models.UsageEvent{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
