package bus

import "time"

// Event represents a domain event published on the bus.
type Event struct {
	Kind      string
	Timestamp time.Time
	Payload   any
}

// Event kinds. Subscribers filter by prefix, so every kind is namespaced.
const (
	KindMessageSent       = "message.sent"
	KindMessageSendFailed = "message.send_failed"
	KindChatCreated       = "chat.created"
	KindChatRead          = "chat.read"
	KindStatusChanged     = "daemon.status_changed"
)

// Store change notifications are keyed per chat (messages) and per user (chats).
// The trailing dot keeps "store.messages.ab." from matching chat "abc".
const (
	StoreMessagesPrefix = "store.messages."
	StoreChatsPrefix    = "store.chats."
)

// MessagesNamespace is the subscription namespace for message changes in one chat.
func MessagesNamespace(chatID string) string {
	return StoreMessagesPrefix + chatID + "."
}

// ChatsNamespace is the subscription namespace for chat metadata changes visible to one user.
func ChatsNamespace(userID string) string {
	return StoreChatsPrefix + userID + "."
}

// MessageEvent is the payload of message.* events.
type MessageEvent struct {
	ChatID    string `json:"chatId"`
	MessageID string `json:"messageId,omitempty"`
	ClientID  string `json:"clientId,omitempty"`
	SenderID  string `json:"senderId"`
	Error     string `json:"error,omitempty"`
}

// ChatEvent is the payload of chat.* events.
type ChatEvent struct {
	ChatID string `json:"chatId"`
	UserID string `json:"userId"`
}
