package telegram

// Sender delivers plain text messages to a Telegram chat.
// Keeps the application layer independent of the bot library.
type Sender interface {
	SendMessage(chatID string, text string) error
}
