package mongostore

import (
	"time"

	"github.com/Japjeet07/ChefMaker-sub000/internal/store"
)

type chatDoc struct {
	ID               string            `bson:"_id"`
	Participants     []string          `bson:"participants"`
	ParticipantNames map[string]string `bson:"participantNames"`
	LastMessage      *messageDoc       `bson:"lastMessage,omitempty"`
	LastMessageAt    *time.Time        `bson:"lastMessageAt,omitempty"`
	UnreadCount      map[string]int    `bson:"unreadCount"`
	CreatedAt        time.Time         `bson:"createdAt"`
	UpdatedAt        time.Time         `bson:"updatedAt"`
}

type messageDoc struct {
	ID         string    `bson:"_id"`
	ChatID     string    `bson:"chatId"`
	SenderID   string    `bson:"senderId"`
	SenderName string    `bson:"senderName"`
	Content    string    `bson:"content"`
	Timestamp  time.Time `bson:"timestamp"`
	Read       bool      `bson:"read"`
	Type       string    `bson:"type"`
	ClientID   string    `bson:"clientId,omitempty"`
}

// toChat coerces a stored document into a Chat. Documents without exactly two
// distinct participants are rejected.
func (d chatDoc) toChat() (store.Chat, bool) {
	if len(d.Participants) != 2 || d.Participants[0] == d.Participants[1] {
		return store.Chat{}, false
	}
	c := store.Chat{
		ID:               d.ID,
		Participants:     [2]string{d.Participants[0], d.Participants[1]},
		ParticipantNames: make(map[string]string, 2),
		UnreadCount:      make(map[string]int, 2),
		CreatedAt:        d.CreatedAt.UTC(),
		UpdatedAt:        d.UpdatedAt.UTC(),
	}
	for _, p := range d.Participants {
		c.ParticipantNames[p] = d.ParticipantNames[p]
		c.UnreadCount[p] = max(d.UnreadCount[p], 0)
	}
	if d.LastMessageAt != nil {
		c.LastMessageAt = d.LastMessageAt.UTC()
	}
	if d.LastMessage != nil {
		m := d.LastMessage.toMessage()
		m.ChatID = d.ID
		c.LastMessage = &m
	}
	return c, true
}

func (d messageDoc) toMessage() store.Message {
	t := store.MessageType(d.Type)
	if !t.Valid() {
		t = store.TypeText
	}
	return store.Message{
		ID:         d.ID,
		ChatID:     d.ChatID,
		SenderID:   d.SenderID,
		SenderName: d.SenderName,
		Content:    d.Content,
		Timestamp:  d.Timestamp.UTC(),
		Read:       d.Read,
		Type:       t,
		ClientID:   d.ClientID,
	}
}

func fromMessage(m store.Message) messageDoc {
	return messageDoc{
		ID:         m.ID,
		ChatID:     m.ChatID,
		SenderID:   m.SenderID,
		SenderName: m.SenderName,
		Content:    m.Content,
		Timestamp:  m.Timestamp.UTC(),
		Read:       m.Read,
		Type:       string(m.Type),
		ClientID:   m.ClientID,
	}
}
