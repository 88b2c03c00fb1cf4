package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Japjeet07/ChefMaker-sub000/internal/bus"
	"github.com/google/uuid"
)

const defaultMessageLimit = 50

// AppendMessage inserts a message and assigns its id and timestamp. Timestamps are
// strictly increasing within a chat: max(now, last+1ms). The insert is a single
// statement so concurrent appends cannot observe the same "last".
func (db *DB) AppendMessage(ctx context.Context, chatID string, m NewMessage) (*Message, error) {
	if m.Type == "" {
		m.Type = TypeText
	}
	if !m.Type.Valid() {
		return nil, fmt.Errorf("%w: message type %q", ErrInvalid, m.Type)
	}

	id := uuid.NewString()
	var ts int64
	err := db.QueryRowContext(ctx, `
		INSERT INTO messages (id, chat_id, sender_id, sender_name, content, message_type, client_id, read, timestamp)
		SELECT ?, ?, ?, ?, ?, ?, ?, 0, MAX(?, last + 1)
		FROM (SELECT COALESCE(MAX(timestamp), 0) AS last FROM messages WHERE chat_id = ?)
		WHERE EXISTS (SELECT 1 FROM chats WHERE id = ?)
		RETURNING timestamp`,
		id, chatID, m.SenderID, m.SenderName, m.Content, string(m.Type), m.ClientID,
		db.now().UnixMilli(), chatID, chatID).Scan(&ts)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("chat %q: %w", chatID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}

	msg := &Message{
		ID:         id,
		ChatID:     chatID,
		SenderID:   m.SenderID,
		SenderName: m.SenderName,
		Content:    m.Content,
		Timestamp:  fromMillis(ts),
		Type:       m.Type,
		ClientID:   m.ClientID,
	}
	db.bus.Publish(bus.Event{Kind: bus.MessagesNamespace(chatID) + "appended", Timestamp: msg.Timestamp, Payload: *msg})
	return msg, nil
}

// ListMessages returns up to q.Limit messages of a chat using keyset pagination
// on (timestamp, id). An empty result for an unknown chat is ErrNotFound.
func (db *DB) ListMessages(ctx context.Context, chatID string, q MessageQuery) ([]Message, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultMessageLimit
	}

	var where strings.Builder
	args := []any{chatID}
	where.WriteString("chat_id = ?")
	if c := q.Before; c != nil {
		ts := toMillis(c.Timestamp)
		where.WriteString(" AND (timestamp < ? OR (timestamp = ? AND id < ?))")
		args = append(args, ts, ts, c.ID)
	}
	if c := q.After; c != nil {
		ts := toMillis(c.Timestamp)
		where.WriteString(" AND (timestamp > ? OR (timestamp = ? AND id > ?))")
		args = append(args, ts, ts, c.ID)
	}
	order := "timestamp DESC, id DESC"
	if q.Direction == OldestFirst {
		order = "timestamp ASC, id ASC"
	}
	args = append(args, limit)

	rows, err := db.QueryContext(ctx, `
		SELECT id, chat_id, sender_id, sender_name, content, message_type, client_id, read, timestamp
		FROM messages
		WHERE `+where.String()+`
		ORDER BY `+order+`
		LIMIT ?`, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var msgs []Message
	for rows.Next() {
		var (
			m       Message
			msgType string
			ts      int64
		)
		if err := rows.Scan(&m.ID, &m.ChatID, &m.SenderID, &m.SenderName, &m.Content, &msgType, &m.ClientID, &m.Read, &ts); err != nil {
			return nil, err
		}
		m.Type = MessageType(msgType)
		m.Timestamp = fromMillis(ts)
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(msgs) == 0 {
		var exists bool
		if err := db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM chats WHERE id = ?)`, chatID).Scan(&exists); err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("chat %q: %w", chatID, ErrNotFound)
		}
	}
	return msgs, nil
}
