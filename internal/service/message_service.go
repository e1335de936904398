package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"threadline/web/internal/cache"
	app_errors "threadline/web/internal/errors"
	"threadline/web/internal/model"
	"threadline/web/internal/optimistic"
	"threadline/web/internal/pagination"
	"threadline/web/internal/poller"
)

type MessagesAPI interface {
	ListConversations(ctx context.Context, page int, status model.ConversationStatus) (pagination.Page[model.Conversation], error)
	GetConversation(ctx context.Context, id int64) (*model.Conversation, error)
	ListMessages(ctx context.Context, conversationID int64, page int) (pagination.Page[model.Message], error)
	SendMessage(ctx context.Context, conversationID int64, req model.SendMessageRequest) (*model.Message, error)
	MarkRead(ctx context.Context, conversationID int64) error
	UnreadCount(ctx context.Context) (model.UnreadCount, error)
	ListInquiries(ctx context.Context, page int) (pagination.Page[model.Inquiry], error)
	UpdateInquiryStatus(ctx context.Context, id int64, status model.InquiryStatus) (*model.Inquiry, error)
}

// MessageService serves the inbox, message threads and inquiries.
type MessageService struct {
	api  MessagesAPI
	deps Deps
}

func NewMessageService(api MessagesAPI, deps Deps) *MessageService {
	return &MessageService{api: api, deps: deps.withDefaults()}
}

func conversationsKey(ctx context.Context, page int, status model.ConversationStatus) cache.Key {
	return key(ctx, "messages/conversations", "page", page, "status", status)
}

// threadKey is the key of the newest page of a conversation, the one live
// views poll and optimistic sends write to.
func threadKey(ctx context.Context, conversationID int64, page int) cache.Key {
	return key(ctx, "messages/thread", "conversation", conversationID, "page", page)
}

func unreadKey(ctx context.Context) cache.Key { return key(ctx, "messages/unread") }

func (s *MessageService) Conversations(ctx context.Context, page int, status model.ConversationStatus) (pagination.Page[model.Conversation], error) {
	page = pagination.Clamp(page)
	return cache.Query(ctx, s.deps.Cache, conversationsKey(ctx, page, status), s.conversationsFetcher(page, status))
}

func (s *MessageService) conversationsFetcher(page int, status model.ConversationStatus) func(context.Context) (pagination.Page[model.Conversation], error) {
	return func(ctx context.Context) (pagination.Page[model.Conversation], error) {
		return s.api.ListConversations(ctx, page, status)
	}
}

func (s *MessageService) Conversation(ctx context.Context, id int64) (*model.Conversation, error) {
	return cache.Query(ctx, s.deps.Cache, key(ctx, "messages/conversation", "id", id),
		func(ctx context.Context) (*model.Conversation, error) { return s.api.GetConversation(ctx, id) })
}

// Thread returns one page of a conversation ordered by creation time.
func (s *MessageService) Thread(ctx context.Context, conversationID int64, page int) (pagination.Page[model.Message], error) {
	page = pagination.Clamp(page)
	return cache.Query(ctx, s.deps.Cache, threadKey(ctx, conversationID, page), s.threadFetcher(conversationID, page))
}

func (s *MessageService) threadFetcher(conversationID int64, page int) func(context.Context) (pagination.Page[model.Message], error) {
	return func(ctx context.Context) (pagination.Page[model.Message], error) {
		return s.api.ListMessages(ctx, conversationID, page)
	}
}

// LoadOlder appends the next page of history to inf, newest page first, and
// reports whether older pages remain.
func (s *MessageService) LoadOlder(ctx context.Context, conversationID int64, inf *pagination.Infinite[model.Message]) (bool, error) {
	next, ok := inf.NextPage()
	if !ok {
		return false, nil
	}
	p, err := s.Thread(ctx, conversationID, next)
	if err != nil {
		return false, err
	}
	if !inf.Append(p) {
		return false, nil
	}
	_, more := inf.NextPage()
	return more, nil
}

// WatchThread keeps the first page of a conversation fresh until
// StopWatching. A thread never reaches a terminal state.
func (s *MessageService) WatchThread(ctx context.Context, conversationID int64) error {
	k := threadKey(ctx, conversationID, 1)
	fetch := s.threadFetcher(conversationID, 1)
	return s.deps.Poller.Start(detach(ctx), poller.Job{
		Key:      string(k),
		Interval: s.deps.Intervals.Messages,
		Fetch: func(ctx context.Context) (any, error) {
			return cache.Reload(ctx, s.deps.Cache, k, fetch)
		},
		Terminal: poller.Never,
	})
}

func (s *MessageService) StopWatching(ctx context.Context, conversationID int64) bool {
	return s.deps.Poller.Stop(string(threadKey(ctx, conversationID, 1)))
}

// SubscribeThread streams every change of the cached first page of a
// conversation, including provisional messages and rollbacks.
func (s *MessageService) SubscribeThread(ctx context.Context, conversationID int64) (<-chan cache.Entry, func()) {
	return s.deps.Cache.Subscribe(threadKey(ctx, conversationID, 1))
}

// WatchInbox polls the first page of the conversation list and the unread
// counter at their own cadences.
func (s *MessageService) WatchInbox(ctx context.Context) error {
	convKey := conversationsKey(ctx, 1, "")
	convFetch := s.conversationsFetcher(1, "")
	err := s.deps.Poller.Start(detach(ctx), poller.Job{
		Key:      string(convKey),
		Interval: s.deps.Intervals.Conversations,
		Fetch: func(ctx context.Context) (any, error) {
			return cache.Reload(ctx, s.deps.Cache, convKey, convFetch)
		},
	})
	if err != nil {
		return err
	}
	uKey := unreadKey(ctx)
	return s.deps.Poller.Start(detach(ctx), poller.Job{
		Key:      string(uKey),
		Interval: s.deps.Intervals.Unread,
		Fetch: func(ctx context.Context) (any, error) {
			return cache.Reload(ctx, s.deps.Cache, uKey, s.api.UnreadCount)
		},
	})
}

func (s *MessageService) UnreadCount(ctx context.Context) (model.UnreadCount, error) {
	return cache.Query(ctx, s.deps.Cache, unreadKey(ctx), s.api.UnreadCount)
}

// SubscribeUnread streams the cached unread counter that WatchInbox keeps
// current.
func (s *MessageService) SubscribeUnread(ctx context.Context) (<-chan cache.Entry, func()) {
	return s.deps.Cache.Subscribe(unreadKey(ctx))
}

// Send posts a message. A provisional copy is shown in the cached first page
// of the thread right away; on failure the page is restored to exactly what
// it was and the error is returned. On success the thread, the inbox and the
// unread counter are revalidated, and the server's copy replaces the
// provisional one.
func (s *MessageService) Send(ctx context.Context, conversationID int64, sender model.Participant, body string) (*model.Message, error) {
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: message body cannot be empty", app_errors.ErrValidation)
	}

	k := threadKey(ctx, conversationID, 1)
	clientID := "temp-" + uuid.NewString()
	provisional := model.Message{
		ConversationID: conversationID,
		SenderID:       sender.ID,
		Sender:         &sender,
		Body:           body,
		CreatedAt:      s.deps.Clock.Now().UTC(),
		ClientID:       clientID,
		Provisional:    true,
	}

	m := optimistic.New[pagination.Page[model.Message]](s.deps.Cache, k).
		WithRevert(func(cur pagination.Page[model.Message]) pagination.Page[model.Message] {
			cur.Data = slices.DeleteFunc(slices.Clone(cur.Data), func(msg model.Message) bool { return msg.ClientID == clientID })
			return cur
		})
	if _, ok := cache.Peek[pagination.Page[model.Message]](s.deps.Cache, k); !ok {
		// Nothing on screen to patch; send without a provisional copy.
		m = nil
	}

	var sent *model.Message
	request := func(ctx context.Context) error {
		var err error
		sent, err = s.api.SendMessage(ctx, conversationID, model.SendMessageRequest{Body: body})
		return err
	}

	var err error
	if m != nil {
		err = optimistic.Run(ctx, m, func(cur pagination.Page[model.Message]) pagination.Page[model.Message] {
			cur.Data = append(slices.Clone(cur.Data), provisional)
			return cur
		}, request)
	} else {
		err = request(ctx)
	}
	if err != nil {
		s.deps.Logger.Warn("Message send failed", "conversation_id", conversationID, "client_id", clientID, "error", err)
		return nil, fmt.Errorf("could not send message: %w", err)
	}

	s.reconcile(k, clientID, *sent)
	s.deps.Cache.InvalidateWhere(inScope(ctx, "messages/thread", "messages/conversations", "messages/unread"))
	return sent, nil
}

// reconcile swaps the provisional copy for the confirmed message so the page
// never shows both while the refetch is in flight. Provisional entries of
// other sends stay until their own confirmation or the next refetch.
func (s *MessageService) reconcile(k cache.Key, clientID string, sent model.Message) {
	s.deps.Cache.Patch(func(c cache.Key) bool { return c == k }, func(cur any) any {
		page, ok := cur.(pagination.Page[model.Message])
		if !ok {
			return cur
		}
		data := slices.DeleteFunc(slices.Clone(page.Data), func(msg model.Message) bool {
			return msg.ClientID == clientID
		})
		if !slices.ContainsFunc(data, func(msg model.Message) bool { return msg.ID == sent.ID }) {
			data = append(data, sent)
		}
		model.SortMessages(data)
		page.Data = data
		return page
	})
}

// MarkRead marks a conversation read and revalidates the counters.
func (s *MessageService) MarkRead(ctx context.Context, conversationID int64) error {
	if err := s.api.MarkRead(ctx, conversationID); err != nil {
		return fmt.Errorf("could not mark conversation %d read: %w", conversationID, err)
	}
	s.deps.Cache.InvalidateWhere(inScope(ctx, "messages/conversations", "messages/unread"))
	return nil
}

func (s *MessageService) Inquiries(ctx context.Context, page int) (pagination.Page[model.Inquiry], error) {
	page = pagination.Clamp(page)
	return cache.Query(ctx, s.deps.Cache, key(ctx, "messages/inquiries", "page", page),
		func(ctx context.Context) (pagination.Page[model.Inquiry], error) { return s.api.ListInquiries(ctx, page) })
}

// UpdateInquiryStatus changes an inquiry's status and patches every cached
// inquiry page that contains it.
func (s *MessageService) UpdateInquiryStatus(ctx context.Context, id int64, status model.InquiryStatus) (*model.Inquiry, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown inquiry status %q", app_errors.ErrValidation, status)
	}
	inq, err := s.api.UpdateInquiryStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("could not update inquiry %d: %w", id, err)
	}
	s.deps.Cache.Patch(inScope(ctx, "messages/inquiries"), func(cur any) any {
		page, ok := cur.(pagination.Page[model.Inquiry])
		if !ok {
			return cur
		}
		data := slices.Clone(page.Data)
		for i := range data {
			if data[i].ID == inq.ID {
				data[i] = *inq
			}
		}
		page.Data = data
		return page
	})
	return inq, nil
}
