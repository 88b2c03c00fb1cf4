package store

import "time"

// MessageType classifies message content. Only text is produced by the send path.
type MessageType string

const (
	TypeText  MessageType = "text"
	TypeImage MessageType = "image"
	TypeFile  MessageType = "file"
)

// Valid reports whether t is a known message type.
func (t MessageType) Valid() bool {
	switch t {
	case TypeText, TypeImage, TypeFile:
		return true
	}
	return false
}

// Chat is the two-party conversation container.
type Chat struct {
	ID               string
	Participants     [2]string
	ParticipantNames map[string]string
	LastMessage      *Message
	LastMessageAt    time.Time // zero until the first send
	UnreadCount      map[string]int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasParticipant reports whether userID is one of the two participants.
func (c *Chat) HasParticipant(userID string) bool {
	return c.Participants[0] == userID || c.Participants[1] == userID
}

// Other returns the participant that is not userID, or "" if userID is not in the chat.
func (c *Chat) Other(userID string) string {
	switch userID {
	case c.Participants[0]:
		return c.Participants[1]
	case c.Participants[1]:
		return c.Participants[0]
	}
	return ""
}

// Message is one immutable chat utterance. Timestamp is assigned by the store.
type Message struct {
	ID         string
	ChatID     string
	SenderID   string
	SenderName string
	Content    string
	Timestamp  time.Time
	Read       bool
	Type       MessageType
	ClientID   string // idempotency key supplied by the sending client; may be empty
}

// Cursor is a keyset position in a chat's message order (timestamp, then id).
type Cursor struct {
	Timestamp time.Time
	ID        string
}

// CursorOf returns the position of m.
func CursorOf(m Message) Cursor {
	return Cursor{Timestamp: m.Timestamp, ID: m.ID}
}

// Before reports whether c sorts strictly before o.
func (c Cursor) Before(o Cursor) bool {
	if !c.Timestamp.Equal(o.Timestamp) {
		return c.Timestamp.Before(o.Timestamp)
	}
	return c.ID < o.ID
}

// NewChat describes a chat to create. Participants must be distinct.
type NewChat struct {
	Participants     [2]string
	ParticipantNames map[string]string
}

// NewMessage describes a message to append; the store assigns ID and Timestamp.
type NewMessage struct {
	SenderID   string
	SenderName string
	Content    string
	Type       MessageType
	ClientID   string
}

// ChatUpdate is an atomic partial update of a chat document.
type ChatUpdate struct {
	// LastMessage replaces the denormalised last message unless the stored one is newer.
	// LastMessageAt only ever moves forward.
	LastMessage *Message
	// ResetUnread sets the listed participants' counters to zero.
	ResetUnread []string
	// IncrementUnread adds one to the listed participants' counters.
	IncrementUnread []string
}

// Order selects the ordering of a chat list query.
type Order int

const (
	OrderNone Order = iota
	OrderLastMessageDesc
)

// Direction selects the scan direction of a message query.
type Direction int

const (
	NewestFirst Direction = iota
	OldestFirst
)

// MessageQuery is a bounded keyset range read over one chat's messages.
type MessageQuery struct {
	Before    *Cursor // strictly before, if set
	After     *Cursor // strictly after, if set
	Direction Direction
	Limit     int
}

// Topic identifies a change-notification stream.
type Topic struct {
	Kind TopicKind
	Key  string
}

// TopicKind is the collection a topic watches.
type TopicKind int

const (
	TopicMessages TopicKind = iota // Key is a chat id
	TopicChats                     // Key is a user id
)

// MessagesTopic watches appends to one chat's messages.
func MessagesTopic(chatID string) Topic { return Topic{Kind: TopicMessages, Key: chatID} }

// ChatsTopic watches metadata changes of every chat a user participates in.
func ChatsTopic(userID string) Topic { return Topic{Kind: TopicChats, Key: userID} }

// Change is a push notification that the watched query may have new results.
// A Change with a non-nil Err is the last value before the channel closes.
type Change struct {
	Topic Topic
	At    time.Time
	Err   error
}
