package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var loaded = false

// Config đọc biến môi trường, nạp .env ở lần gọi đầu tiên
func Config(key string) string {
	if !loaded {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("no .env file found, using environment variables")
		}
		loaded = true
	}
	return os.Getenv(key)
}
