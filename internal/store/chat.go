package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Japjeet07/ChefMaker-sub000/internal/bus"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const chatColumns = `c.id, c.last_message_id, c.last_sender_id, c.last_sender_name, c.last_content,
	c.last_message_type, c.last_client_id, c.last_message_at, c.created_at, c.updated_at`

type scanner interface {
	Scan(dest ...any) error
}

type participantRow struct {
	userID      string
	position    int
	displayName string
	unread      int
}

// CreateChat inserts a chat with both participants and zeroed unread counters.
func (db *DB) CreateChat(ctx context.Context, nc NewChat) (*Chat, error) {
	a, b := nc.Participants[0], nc.Participants[1]
	if a == "" || b == "" || a == b {
		return nil, fmt.Errorf("%w: participants must be two distinct ids", ErrInvalid)
	}

	id := uuid.NewString()
	now := db.now().UnixMilli()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO chats (id, created_at, updated_at) VALUES (?, ?, ?)`, id, now, now); err != nil {
		return nil, fmt.Errorf("insert chat: %w", err)
	}
	for pos, userID := range nc.Participants {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO chat_participants (chat_id, user_id, position, display_name, unread_count)
			VALUES (?, ?, ?, ?, 0)`,
			id, userID, pos, nc.ParticipantNames[userID]); err != nil {
			return nil, fmt.Errorf("insert participant %q: %w", userID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	db.notifyChats(nc.Participants[:], "created")
	return db.GetChat(ctx, id)
}

// GetChat returns a single chat by id, or ErrNotFound.
func (db *DB) GetChat(ctx context.Context, chatID string) (*Chat, error) {
	c, err := scanChat(db.QueryRowContext(ctx, `SELECT `+chatColumns+` FROM chats c WHERE c.id = ?`, chatID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("chat %q: %w", chatID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	parts, err := db.participants(ctx, `chat_id = ?`, chatID)
	if err != nil {
		return nil, err
	}
	if !attachParticipants(c, parts[chatID]) {
		return nil, fmt.Errorf("chat %q has %d participants, want 2", chatID, len(parts[chatID]))
	}
	return c, nil
}

// ListChatsByParticipant returns every chat userID belongs to. With OrderLastMessageDesc
// the most recently active chat comes first; ties are broken by chat id.
func (db *DB) ListChatsByParticipant(ctx context.Context, userID string, order Order) ([]Chat, error) {
	q := `SELECT ` + chatColumns + `
		FROM chats c
		JOIN chat_participants p ON p.chat_id = c.id
		WHERE p.user_id = ?`
	if order == OrderLastMessageDesc {
		q += ` ORDER BY c.last_message_at DESC, c.id ASC`
	}

	rows, err := db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var chats []*Chat
	for rows.Next() {
		c, err := scanChat(rows)
		if err != nil {
			return nil, err
		}
		chats = append(chats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	parts, err := db.participants(ctx,
		`chat_id IN (SELECT chat_id FROM chat_participants WHERE user_id = ?)`, userID)
	if err != nil {
		return nil, err
	}

	out := make([]Chat, 0, len(chats))
	for _, c := range chats {
		if !attachParticipants(c, parts[c.ID]) {
			db.logger.Warn("skipping malformed chat", zap.String("chat_id", c.ID), zap.Int("participants", len(parts[c.ID])))
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

// ApplyChatUpdate applies u atomically. Unknown chats yield ErrNotFound; unread changes
// for users outside the chat yield ErrNotParticipant and roll back the whole update.
func (db *DB) ApplyChatUpdate(ctx context.Context, chatID string, u ChatUpdate) error {
	now := db.now().UnixMilli()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `UPDATE chats SET updated_at = ? WHERE id = ?`, now, chatID)
	if err != nil {
		return fmt.Errorf("touch chat: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("chat %q: %w", chatID, ErrNotFound)
	}

	if m := u.LastMessage; m != nil {
		ts := toMillis(m.Timestamp)
		if _, err := tx.ExecContext(ctx, `
			UPDATE chats SET
				last_message_id = ?, last_sender_id = ?, last_sender_name = ?, last_content = ?,
				last_message_type = ?, last_client_id = ?, last_message_at = ?
			WHERE id = ? AND last_message_at <= ?`,
			m.ID, m.SenderID, m.SenderName, m.Content, string(m.Type), m.ClientID, ts,
			chatID, ts); err != nil {
			return fmt.Errorf("set last message: %w", err)
		}
	}

	for _, userID := range u.ResetUnread {
		if err := execParticipant(ctx, tx, `UPDATE chat_participants SET unread_count = 0 WHERE chat_id = ? AND user_id = ?`, chatID, userID); err != nil {
			return err
		}
	}
	for _, userID := range u.IncrementUnread {
		if err := execParticipant(ctx, tx, `UPDATE chat_participants SET unread_count = unread_count + 1 WHERE chat_id = ? AND user_id = ?`, chatID, userID); err != nil {
			return err
		}
	}

	users, err := participantIDs(ctx, tx, chatID)
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	db.notifyChats(users, "updated")
	return nil
}

func execParticipant(ctx context.Context, tx *sql.Tx, query, chatID, userID string) error {
	res, err := tx.ExecContext(ctx, query, chatID, userID)
	if err != nil {
		return fmt.Errorf("update unread for %q: %w", userID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("user %q in chat %q: %w", userID, chatID, ErrNotParticipant)
	}
	return nil
}

func participantIDs(ctx context.Context, tx *sql.Tx, chatID string) ([]string, error) {
	rows, err := tx.QueryContext(ctx, `SELECT user_id FROM chat_participants WHERE chat_id = ? ORDER BY position`, chatID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (db *DB) participants(ctx context.Context, where string, arg any) (map[string][]participantRow, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT chat_id, user_id, position, display_name, unread_count
		FROM chat_participants
		WHERE `+where+`
		ORDER BY chat_id, position`, arg)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make(map[string][]participantRow)
	for rows.Next() {
		var chatID string
		var p participantRow
		if err := rows.Scan(&chatID, &p.userID, &p.position, &p.displayName, &p.unread); err != nil {
			return nil, err
		}
		out[chatID] = append(out[chatID], p)
	}
	return out, rows.Err()
}

func scanChat(row scanner) (*Chat, error) {
	var (
		c                                     Chat
		lastID, senderID, senderName, content string
		msgType, clientID                     string
		lastAt, createdAt, updatedAt          int64
	)
	if err := row.Scan(&c.ID, &lastID, &senderID, &senderName, &content,
		&msgType, &clientID, &lastAt, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	c.LastMessageAt = fromMillis(lastAt)
	c.CreatedAt = fromMillis(createdAt)
	c.UpdatedAt = fromMillis(updatedAt)
	if lastID != "" {
		c.LastMessage = &Message{
			ID:         lastID,
			ChatID:     c.ID,
			SenderID:   senderID,
			SenderName: senderName,
			Content:    content,
			Timestamp:  c.LastMessageAt,
			Type:       MessageType(msgType),
			ClientID:   clientID,
		}
	}
	return &c, nil
}

func attachParticipants(c *Chat, parts []participantRow) bool {
	if len(parts) != 2 || parts[0].userID == parts[1].userID {
		return false
	}
	c.ParticipantNames = make(map[string]string, 2)
	c.UnreadCount = make(map[string]int, 2)
	for i, p := range parts {
		c.Participants[i] = p.userID
		c.ParticipantNames[p.userID] = p.displayName
		c.UnreadCount[p.userID] = max(p.unread, 0)
	}
	return true
}

func (db *DB) notifyChats(users []string, what string) {
	now := time.Now()
	for _, u := range users {
		db.bus.Publish(bus.Event{Kind: bus.ChatsNamespace(u) + what, Timestamp: now})
	}
}
