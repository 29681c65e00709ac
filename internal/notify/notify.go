// Package notify sends a message through a channel picked by a factory method.
package notify

import (
	"context"
	"fmt"
	"io"

	"github.com/JonMunkholm/creational/internal/core"
	"github.com/JonMunkholm/creational/internal/logging"
)

// DefaultMessage is the text sent by the notify program.
const DefaultMessage = "Your order has been shipped!"

// Channel identifies a delivery channel.
type Channel string

const (
	Email    Channel = "Email"
	SMS      Channel = "SMS"
	WhatsApp Channel = "WhatsApp"
)

// Notification delivers a message over one channel.
type Notification interface {
	Channel() Channel
	Send(w io.Writer, message string) error
}

// Creator is the factory method: each creator yields one kind of notification.
type Creator interface {
	CreateNotification() Notification
}

var creators = core.NewRegistry("notification type",
	core.Entry[Creator]{Key: "email", New: func() Creator { return EmailCreator{} }},
	core.Entry[Creator]{Key: "sms", New: func() Creator { return SMSCreator{} }},
	core.Entry[Creator]{Key: "whatsapp", New: func() Creator { return WhatsAppCreator{} }},
)

// Types returns the accepted notification type selections.
func Types() []string {
	return creators.Keys()
}

// ForType returns the creator for a selection such as "email".
func ForType(selection string) (Creator, error) {
	return creators.Lookup(selection)
}

// Send creates a notification with c and delivers message through it.
func Send(w io.Writer, c Creator, message string) error {
	return c.CreateNotification().Send(w, message)
}

// Run selects a creator and sends DefaultMessage.
func Run(ctx context.Context, selection string, w io.Writer) error {
	c, err := ForType(selection)
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Info("notification type selected", "type", core.Normalize(selection))

	if err := Send(w, c, DefaultMessage); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}
