package mailer

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"log"
	"net"
	"net/smtp"
	"net/url"
	"path/filepath"
	"strings"
	"time"
)

const smtpHost = "smtp.gmail.com"
const smtpAddr = "smtp.gmail.com:587"

type MailService struct {
	gmailUser    string
	gmailAppPass string
	mailFrom     string
	mailFromName string
	templateDir  string
}

func NewMailService(
	gmailUser string,
	gmailAppPass string,
	mailFrom string,
	mailFromName string,
	templateDir string,
) *MailService {
	return &MailService{
		gmailUser:    gmailUser,
		gmailAppPass: gmailAppPass,
		mailFrom:     mailFrom,
		mailFromName: mailFromName,
		templateDir:  templateDir,
	}
}

// SendMail renders the template for the given kind ("verify" or "reset") and
// delivers it over SMTP. The action link embeds the token in the path handled
// by the API: {base_url}api/auth/{kind}/{token}.
func (s *MailService) SendMail(to string, subject string, kind string, baseURL string, token string) error {

	link := fmt.Sprintf("%sapi/auth/%s/%s",
		baseURL,
		kind,
		url.PathEscape(token),
	)

	htmlBody, err := s.renderTemplate(kind, link)
	if err != nil {
		return err
	}

	fromHeader := fmt.Sprintf("%s <%s>", s.mailFromName, s.mailFrom)

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", fromHeader),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		htmlBody,
	}, "\r\n")

	log.Printf("[MAIL] smtp sending to=%s via=%s", to, smtpAddr)

	err = s.sendSMTPWithTimeout(to, []byte(msg))
	if err != nil {
		return err
	}

	log.Printf("[MAIL] sent to=%s", to)
	return nil
}

func (s *MailService) renderTemplate(kind string, link string) (string, error) {
	tmpl, err := template.ParseFiles(filepath.Join(s.templateDir, kind+"-email.html"))
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]string{
		"Link": link,
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *MailService) sendSMTPWithTimeout(to string, msg []byte) error {
	conn, err := net.DialTimeout("tcp", smtpAddr, 8*time.Second)
	if err != nil {
		return err
	}
	// deadline covers the whole exchange, not just the dial
	_ = conn.SetDeadline(time.Now().Add(15 * time.Second))

	c, err := smtp.NewClient(conn, smtpHost)
	if err != nil {
		return err
	}
	defer func() { _ = c.Quit() }()

	// STARTTLS
	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: smtpHost}); err != nil {
			return err
		}
	}
	// Auth
	auth := smtp.PlainAuth("", s.gmailUser, s.gmailAppPass, smtpHost)
	if err := c.Auth(auth); err != nil {
		return err
	}

	// From/To
	if err := c.Mail(s.mailFrom); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}

	// Data
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
