package api

import (
	"time"

	chefchatv1 "github.com/Japjeet07/ChefMaker-sub000/gen/chefchat/v1"
	"github.com/Japjeet07/ChefMaker-sub000/internal/pager"
	"github.com/Japjeet07/ChefMaker-sub000/internal/store"
)

func unixMs(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromUnixMs(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

func messageToProto(m store.Message) *chefchatv1.Message {
	return &chefchatv1.Message{
		Id:              m.ID,
		ChatId:          m.ChatID,
		SenderId:        m.SenderID,
		SenderName:      m.SenderName,
		Content:         m.Content,
		TimestampUnixMs: unixMs(m.Timestamp),
		Read:            m.Read,
		Type:            string(m.Type),
		ClientId:        m.ClientID,
	}
}

func messageFromProto(m *chefchatv1.Message) store.Message {
	return store.Message{
		ID:         m.GetId(),
		ChatID:     m.GetChatId(),
		SenderID:   m.GetSenderId(),
		SenderName: m.GetSenderName(),
		Content:    m.GetContent(),
		Timestamp:  fromUnixMs(m.GetTimestampUnixMs()),
		Read:       m.GetRead(),
		Type:       store.MessageType(m.GetType()),
		ClientID:   m.GetClientId(),
	}
}

func messagesToProto(msgs []store.Message) []*chefchatv1.Message {
	out := make([]*chefchatv1.Message, len(msgs))
	for i, m := range msgs {
		out[i] = messageToProto(m)
	}
	return out
}

func messagesFromProto(msgs []*chefchatv1.Message) []store.Message {
	out := make([]store.Message, len(msgs))
	for i, m := range msgs {
		out[i] = messageFromProto(m)
	}
	return out
}

// chatToProto keeps the participant order; names and unread counters travel
// with each participant.
func chatToProto(c store.Chat) *chefchatv1.Chat {
	pc := &chefchatv1.Chat{
		Id:                  c.ID,
		LastMessageAtUnixMs: unixMs(c.LastMessageAt),
		CreatedAtUnixMs:     unixMs(c.CreatedAt),
		UpdatedAtUnixMs:     unixMs(c.UpdatedAt),
	}
	for _, user := range c.Participants {
		pc.Participants = append(pc.Participants, &chefchatv1.Participant{
			UserId:      user,
			DisplayName: c.ParticipantNames[user],
			UnreadCount: int32(c.UnreadCount[user]),
		})
	}
	if c.LastMessage != nil {
		pc.LastMessage = messageToProto(*c.LastMessage)
	}
	return pc
}

func chatsToProto(chats []store.Chat) []*chefchatv1.Chat {
	out := make([]*chefchatv1.Chat, len(chats))
	for i, c := range chats {
		out[i] = chatToProto(c)
	}
	return out
}

func chatFromProto(pc *chefchatv1.Chat) store.Chat {
	c := store.Chat{
		ID:               pc.GetId(),
		ParticipantNames: map[string]string{},
		LastMessageAt:    fromUnixMs(pc.GetLastMessageAtUnixMs()),
		UnreadCount:      map[string]int{},
		CreatedAt:        fromUnixMs(pc.GetCreatedAtUnixMs()),
		UpdatedAt:        fromUnixMs(pc.GetUpdatedAtUnixMs()),
	}
	for i, p := range pc.GetParticipants() {
		if i < len(c.Participants) {
			c.Participants[i] = p.GetUserId()
		}
		if p.GetDisplayName() != "" {
			c.ParticipantNames[p.GetUserId()] = p.GetDisplayName()
		}
		c.UnreadCount[p.GetUserId()] = int(p.GetUnreadCount())
	}
	if pc.GetLastMessage() != nil {
		m := messageFromProto(pc.GetLastMessage())
		c.LastMessage = &m
	}
	return c
}

func chatsFromProto(chats []*chefchatv1.Chat) []store.Chat {
	out := make([]store.Chat, len(chats))
	for i, c := range chats {
		out[i] = chatFromProto(c)
	}
	return out
}

func cursorToProto(c *store.Cursor) *chefchatv1.Cursor {
	if c == nil {
		return nil
	}
	return &chefchatv1.Cursor{TimestampUnixMs: unixMs(c.Timestamp), Id: c.ID}
}

func cursorFromProto(c *chefchatv1.Cursor) *store.Cursor {
	if c == nil {
		return nil
	}
	return &store.Cursor{Timestamp: fromUnixMs(c.GetTimestampUnixMs()), ID: c.GetId()}
}

func pageToProto(p pager.Page) *chefchatv1.MessagePage {
	return &chefchatv1.MessagePage{
		Messages: messagesToProto(p.Messages),
		Cursor:   cursorToProto(p.Cursor),
		HasMore:  p.HasMore,
	}
}

func pageFromProto(p *chefchatv1.MessagePage) pager.Page {
	return pager.Page{
		Messages: messagesFromProto(p.GetMessages()),
		Cursor:   cursorFromProto(p.GetCursor()),
		HasMore:  p.GetHasMore(),
	}
}
