package main

import (
	"log"

	"github.com/SundayYogurt/contacts_service/config"
	"github.com/SundayYogurt/contacts_service/infra/queue"
	"github.com/SundayYogurt/contacts_service/internal/mailer"
)

func main() {
	// ---------- Load Config ----------
	cfg := config.LoadConfig()

	log.Println("Mail Service starting...")
	log.Printf("KafkaBroker=%s Topic=%s GroupID=%s\n",
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaGroupID,
	)

	// ---------- Init Service ----------
	mailService := mailer.NewMailService(
		cfg.GmailUser,
		cfg.GmailAppPassword,
		cfg.MailFrom,
		cfg.MailFromName,
		cfg.MailTemplateDir,
	)

	// ---------- Init Handler ----------
	handler := mailer.NewMailHandler(mailService)

	// ---------- Init Kafka Consumer ----------
	consumer := queue.NewKafkaConsumer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaGroupID,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
		handler,
	)

	// ---------- Start Listening ----------
	log.Println("Mail Service listening for events...")
	consumer.Listen()
}
