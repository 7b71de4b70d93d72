package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBDriver string
	DBSource string

	JWTSecret string
	JWTTTL    time.Duration

	AdminEmail    string
	AdminPassword string

	// Payment gateway.
	PesapalBaseURL        string
	PesapalConsumerKey    string
	PesapalConsumerSecret string
	PesapalIPNID          string
	PesapalCallbackURL    string

	// Uploads.
	StorageDriver string // local | s3
	UploadDir     string
	S3Bucket      string
	S3Region      string

	// Cart snapshots directory; empty keeps carts in memory only.
	CartDir string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		Port:      getEnv("PORT", "8000"),
		DBDriver:  getEnv("DB_DRIVER", "sqlite"),
		DBSource:  getEnv("DB_SOURCE", "manziz.db"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    24 * time.Hour,

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		PesapalBaseURL:        getEnv("PESAPAL_BASE_URL", "https://pay.pesapal.com/v3"),
		PesapalConsumerKey:    os.Getenv("PESAPAL_CONSUMER_KEY"),
		PesapalConsumerSecret: os.Getenv("PESAPAL_CONSUMER_SECRET"),
		PesapalIPNID:          os.Getenv("PESAPAL_IPN_ID"),
		PesapalCallbackURL:    getEnv("PESAPAL_CALLBACK_URL", "http://localhost:8000/payment/callback"),

		StorageDriver: getEnv("STORAGE_DRIVER", "local"),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		S3Bucket:      os.Getenv("S3_BUCKET"),
		S3Region:      getEnv("S3_REGION", "eu-west-1"),

		CartDir: getEnv("CART_DIR", "./carts"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
