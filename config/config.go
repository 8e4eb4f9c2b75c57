package config

import (
	"log"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
)

var Cloudinary *cloudinary.Cloudinary

// Location là múi giờ nghiệp vụ; mọi phép tính lịch tháng dùng múi giờ này.
var Location = time.UTC

func LoadLocation() {
	tz := os.Getenv("TIMEZONE")
	if tz == "" {
		tz = "America/Mexico_City"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("Warning: không nạp được múi giờ %s, dùng UTC: %v", tz, err)
		return
	}
	Location = loc
}

func ConnectCloudinary() {
	var err error
	Cloudinary, err = cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Lỗi khi khởi tạo Cloudinary: %v", err)
	}
}

func LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
	return nil
}

func GetEnv(key string) string {
	return os.Getenv(key)
}
