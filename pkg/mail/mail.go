package mail

import (
	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
)

// Sender delivers a single message. Delivery is best-effort from the
// caller's perspective; a failed send is reported but never retried here.
type Sender interface {
	Send(to, subject, body string) error
}

func NewSender(conf *viper.Viper) Sender {
	return &smtpSender{
		from: conf.GetString("mail.from"),
		dialer: gomail.NewDialer(
			conf.GetString("mail.host"),
			conf.GetInt("mail.port"),
			conf.GetString("mail.username"),
			conf.GetString("mail.password"),
		),
	}
}

type smtpSender struct {
	from   string
	dialer *gomail.Dialer
}

func (s *smtpSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return s.dialer.DialAndSend(m)
}
