package mailer

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/SundayYogurt/contacts_service/internal/dto"
)

type Sender interface {
	SendMail(to string, subject string, kind string, baseURL string, token string) error
}

type MailHandler struct {
	sender Sender
}

func NewMailHandler(sender Sender) *MailHandler {
	return &MailHandler{sender: sender}
}

func (h *MailHandler) HandleMessage(message string) error {
	var event dto.MailEvent

	if err := json.Unmarshal([]byte(message), &event); err != nil {
		log.Printf("invalid event payload: %s\n", message)
		return err
	}

	if event.Kind != dto.MailKindVerify && event.Kind != dto.MailKindReset {
		log.Printf("unknown mail kind: %q event_id=%s", event.Kind, event.EventID)
		return fmt.Errorf("unknown mail kind %q", event.Kind)
	}

	log.Printf("Mail event received: event_id=%s kind=%s email=%s",
		event.EventID, event.Kind, event.Email)

	err := h.sender.SendMail(event.Email, event.Subject, event.Kind, event.BaseURL, event.Token)
	log.Println("[MAIL] send finished, err =", err)
	return err
}
