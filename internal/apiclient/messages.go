package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"threadline/web/internal/model"
	"threadline/web/internal/pagination"
)

// ListConversations returns the inbox, optionally filtered by status.
func (c *Client) ListConversations(ctx context.Context, page int, status model.ConversationStatus) (pagination.Page[model.Conversation], error) {
	q := pageQuery(page)
	if status != "" {
		q.Set("status", string(status))
	}
	return getPage[model.Conversation](ctx, c, "/conversations", q)
}

func (c *Client) GetConversation(ctx context.Context, id int64) (*model.Conversation, error) {
	conv, err := getOne[model.Conversation](ctx, c, fmt.Sprintf("/conversations/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// ListMessages returns one page of a thread in server order.
func (c *Client) ListMessages(ctx context.Context, conversationID int64, page int) (pagination.Page[model.Message], error) {
	p, err := getPage[model.Message](ctx, c, fmt.Sprintf("/conversations/%d/messages", conversationID), pageQuery(page))
	if err != nil {
		return p, err
	}
	model.SortMessages(p.Data)
	return p, nil
}

func (c *Client) SendMessage(ctx context.Context, conversationID int64, req model.SendMessageRequest) (*model.Message, error) {
	m, err := sendOne[model.Message](ctx, c, http.MethodPost, fmt.Sprintf("/conversations/%d/messages", conversationID), req)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// MarkRead marks every message of a conversation as read.
func (c *Client) MarkRead(ctx context.Context, conversationID int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/conversations/%d/read", conversationID), nil, nil, nil)
}

func (c *Client) UnreadCount(ctx context.Context) (model.UnreadCount, error) {
	return getOne[model.UnreadCount](ctx, c, "/messages/unread-count", nil)
}

func (c *Client) ListInquiries(ctx context.Context, page int) (pagination.Page[model.Inquiry], error) {
	return getPage[model.Inquiry](ctx, c, "/inquiries", pageQuery(page))
}

func (c *Client) UpdateInquiryStatus(ctx context.Context, id int64, status model.InquiryStatus) (*model.Inquiry, error) {
	inq, err := sendOne[model.Inquiry](ctx, c, http.MethodPatch, fmt.Sprintf("/inquiries/%d", id), map[string]model.InquiryStatus{"status": status})
	if err != nil {
		return nil, err
	}
	return &inq, nil
}
