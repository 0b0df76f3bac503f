// internal/app/notifier.go
package app

import (
	"fmt"

	"homework_status_bot/internal/domain/homework"
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// Notifier sends status messages to the configured chat. Delivery failures
// are logged here and never reach the poll loop.
type Notifier struct {
	sender domainTelegram.Sender
	chatID string
	logger *logrus.Entry
}

func NewNotifier(sender domainTelegram.Sender, chatID string, logger *logrus.Entry) *Notifier {
	return &Notifier{
		sender: sender,
		chatID: chatID,
		logger: logger.WithField("component", "notifier"),
	}
}

// Notify reports whether the message was delivered.
func (n *Notifier) Notify(text string) bool {
	if err := n.sender.SendMessage(n.chatID, text); err != nil {
		n.logger.WithError(fmt.Errorf("%w: %v", homework.ErrDelivery, err)).
			WithField("chat_id", n.chatID).
			Error("Failed to send status message")
		return false
	}
	n.logger.WithField("chat_id", n.chatID).Debug("Status message delivered")
	return true
}
