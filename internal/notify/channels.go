package notify

import (
	"fmt"
	"io"
)

type EmailCreator struct{}

func (EmailCreator) CreateNotification() Notification { return EmailNotification{} }

type EmailNotification struct{}

func (EmailNotification) Channel() Channel { return Email }

func (EmailNotification) Send(w io.Writer, message string) error {
	_, err := fmt.Fprintf(w, "[Email] Sending email notification: %s\n", message)
	return err
}

type SMSCreator struct{}

func (SMSCreator) CreateNotification() Notification { return SMSNotification{} }

type SMSNotification struct{}

func (SMSNotification) Channel() Channel { return SMS }

func (SMSNotification) Send(w io.Writer, message string) error {
	_, err := fmt.Fprintf(w, "[SMS] Sending SMS notification: %s\n", message)
	return err
}

type WhatsAppCreator struct{}

func (WhatsAppCreator) CreateNotification() Notification { return WhatsAppNotification{} }

type WhatsAppNotification struct{}

func (WhatsAppNotification) Channel() Channel { return WhatsApp }

func (WhatsAppNotification) Send(w io.Writer, message string) error {
	_, err := fmt.Fprintf(w, "[WhatsApp] Sending WhatsApp notification: %s\n", message)
	return err
}
