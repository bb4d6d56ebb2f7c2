package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort   string
	AllowOrigins string

	DatabaseDSN string

	RedisAddr     string
	RedisPassword string

	KafkaBroker   string
	KafkaTopic    string
	KafkaGroupID  string
	KafkaUsername string
	KafkaPassword string

	JWTSecret string

	CloudinaryURL string

	GmailUser        string
	GmailAppPassword string
	MailFrom         string
	MailFromName     string
	MailTemplateDir  string
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: env file not found or could not be loaded:", err)
		}
	}

	return Config{
		ServerPort:   getenv("SERVER_PORT", ":8000"),
		AllowOrigins: getenv("ALLOW_ORIGINS", "*"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		KafkaBroker:   getenv("KAFKA_BROKER", "localhost:9092"),
		KafkaTopic:    getenv("KAFKA_TOPIC", "contacts.mail"),
		KafkaGroupID:  getenv("KAFKA_GROUP_ID", "mail-service"),
		KafkaUsername: os.Getenv("KAFKA_USERNAME"),
		KafkaPassword: os.Getenv("KAFKA_PASSWORD"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),

		GmailUser:        os.Getenv("GMAIL_USER"),
		GmailAppPassword: os.Getenv("GMAIL_APP_PASSWORD"),
		MailFrom:         os.Getenv("MAIL_FROM"),
		MailFromName:     getenv("MAIL_FROM_NAME", "Contacts API"),
		MailTemplateDir:  getenv("MAIL_TEMPLATE_DIR", "internal/mailer/templates"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
