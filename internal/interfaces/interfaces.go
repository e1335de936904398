package interfaces

import (
	"context"

	"threadline/web/internal/model"
	"threadline/web/internal/pagination"
	"threadline/web/internal/poller"
	"threadline/web/internal/service"
)

// The HTTP layer depends on these contracts rather than on the concrete
// services, so handlers can be tested against mocks.

// ContactService records and lists contact form submissions.
type ContactService interface {
	Submit(ctx context.Context, req model.ContactRequest) (*model.ContactSubmission, error)
	List(ctx context.Context, page, perPage int) (pagination.Page[model.ContactSubmission], error)
	Get(ctx context.Context, id string) (*model.ContactSubmission, error)
}

// AuthService manages sessions against the marketplace API.
type AuthService interface {
	Login(ctx context.Context, req model.LoginRequest) (*service.Session, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*model.User, error)
	Redirect(ctx context.Context) (string, error)
}

type DesignService interface {
	List(ctx context.Context, page int) (pagination.Page[model.Design], error)
	Get(ctx context.Context, id int64) (*model.Design, error)
	TrackAnalysis(ctx context.Context, id int64, onCompleted func(model.Design)) error
	AnalysisState(ctx context.Context, id int64) poller.State
	StopTracking(ctx context.Context, id int64) bool
}

type MessageService interface {
	Conversations(ctx context.Context, page int, status model.ConversationStatus) (pagination.Page[model.Conversation], error)
	Thread(ctx context.Context, conversationID int64, page int) (pagination.Page[model.Message], error)
	Send(ctx context.Context, conversationID int64, sender model.Participant, body string) (*model.Message, error)
	MarkRead(ctx context.Context, conversationID int64) error
	UnreadCount(ctx context.Context) (model.UnreadCount, error)
	UpdateInquiryStatus(ctx context.Context, id int64, status model.InquiryStatus) (*model.Inquiry, error)
}

type SupplierService interface {
	Search(ctx context.Context, f model.SupplierFilter) (pagination.Page[model.Supplier], error)
	Get(ctx context.Context, id int64) (*model.Supplier, error)
	ToggleSaved(ctx context.Context, id int64) (model.SavedToggle, error)
}

type BillingService interface {
	Plans(ctx context.Context) ([]model.Plan, error)
	Subscription(ctx context.Context) (*model.Subscription, error)
	Invoices(ctx context.Context, page int) (pagination.Page[model.Invoice], error)
}

type AdminService interface {
	Users(ctx context.Context, page int, role model.Role) (pagination.Page[model.User], error)
	Stats(ctx context.Context) (model.AdminStats, error)
	UpdateUserStatus(ctx context.Context, id int64, status model.UserStatus) (*model.User, error)
}

type ValidationService interface {
	Get(ctx context.Context, id int64) (*model.Validation, error)
	List(ctx context.Context, designID int64, page int) (pagination.Page[model.Validation], error)
	Track(ctx context.Context, id int64, onSettled func(model.Validation)) error
	TrackState(ctx context.Context, id int64) poller.State
	StopTracking(ctx context.Context, id int64) bool
}
