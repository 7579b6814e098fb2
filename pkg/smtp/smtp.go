package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"
)

type ItfSmtp interface {
	SendOTP(userEmail string, otp string) error
	SendNewsletterWelcome(userEmail string, unsubscribeURL string) error
}

type smtp struct {
	auth smtpPkg.Auth
	mail string
	host string
	addr string
}

func New() ItfSmtp {
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	auth := smtpPkg.PlainAuth("", mail, password, host)

	return &smtp{
		auth: auth,
		mail: mail,
		host: host,
		addr: fmt.Sprintf("%s:%s", host, port),
	}
}

func (s *smtp) SendOTP(userEmail string, otp string) error {
	message := []byte(fmt.Sprintf(
		"To: %s\r\nSubject: ROBOSTAAN verification code\r\n\r\nHello, your ROBOSTAAN verification code is: %s\r\nThe code expires in 5 minutes.",
		userEmail, otp))

	return smtpPkg.SendMail(s.addr, s.auth, s.mail, []string{userEmail}, message)
}

func (s *smtp) SendNewsletterWelcome(userEmail string, unsubscribeURL string) error {
	message := []byte(fmt.Sprintf(
		"To: %s\r\nSubject: Welcome to the ROBOSTAAN newsletter\r\n\r\nThanks for subscribing to the ROBOSTAAN robotics newsletter!\r\nYou can unsubscribe anytime: %s",
		userEmail, unsubscribeURL))

	return smtpPkg.SendMail(s.addr, s.auth, s.mail, []string{userEmail}, message)
}
