package model

import (
	"slices"
	"time"
)

// ConversationStatus filters the inbox.
type ConversationStatus string

const (
	ConversationActive   ConversationStatus = "active"
	ConversationArchived ConversationStatus = "archived"
)

// Participant is the public view of a conversation member.
type Participant struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Conversation groups the ordered messages between participants.
type Conversation struct {
	ID           int64              `json:"id"`
	Subject      string             `json:"subject"`
	Status       ConversationStatus `json:"status"`
	Participants []Participant      `json:"participants"`
	LastMessage  *Message           `json:"last_message,omitempty"`
	UnreadCount  int                `json:"unread_count"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// Message belongs to exactly one conversation and one sender.
//
// ClientID and Provisional are only set on locally synthesized messages that
// have not been confirmed by the server yet.
type Message struct {
	ID             int64        `json:"id"`
	ConversationID int64        `json:"conversation_id"`
	SenderID       int64        `json:"sender_id"`
	Sender         *Participant `json:"sender,omitempty"`
	Body           string       `json:"body"`
	ReadAt         *time.Time   `json:"read_at,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	ClientID       string       `json:"client_id,omitempty"`
	Provisional    bool         `json:"provisional,omitempty"`
}

// SendMessageRequest is the payload for posting into a conversation.
type SendMessageRequest struct {
	Body string `json:"body" validate:"required,max=5000"`
}

// SortMessages orders an authoritative list by server creation time and then
// by server id. The sort is stable so equal keys keep the server's order.
func SortMessages(msgs []Message) {
	slices.SortStableFunc(msgs, func(a, b Message) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
}

// InquiryStatus is the lifecycle of a designer-to-supplier inquiry.
type InquiryStatus string

const (
	InquiryNew        InquiryStatus = "new"
	InquiryInProgress InquiryStatus = "in_progress"
	InquiryQuoted     InquiryStatus = "quoted"
	InquiryClosed     InquiryStatus = "closed"
)

// Valid reports whether s is one of the known inquiry statuses.
func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryNew, InquiryInProgress, InquiryQuoted, InquiryClosed:
		return true
	}
	return false
}

// Inquiry is a designer request for a quote from a supplier.
type Inquiry struct {
	ID             int64         `json:"id"`
	DesignerID     int64         `json:"designer_id"`
	SupplierID     int64         `json:"supplier_id"`
	ConversationID int64         `json:"conversation_id,omitempty"`
	Subject        string        `json:"subject"`
	Message        string        `json:"message"`
	Status         InquiryStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
}

// UnreadCount is the inbox badge counter.
type UnreadCount struct {
	Count int `json:"count"`
}
