package api

import (
	"net/http"

	"threadline/web/internal/interfaces"
	"threadline/web/internal/model"
)

// MessageHandler serves the inbox. Sending needs the signed-in user to stamp
// the provisional message, so it also depends on the auth service.
type MessageHandler struct {
	messages interfaces.MessageService
	auth     interfaces.AuthService
}

func NewMessageHandler(messages interfaces.MessageService, auth interfaces.AuthService) *MessageHandler {
	return &MessageHandler{messages: messages, auth: auth}
}

// InquiryStatusRequest changes the status of an inquiry.
type InquiryStatusRequest struct {
	Status model.InquiryStatus `json:"status" validate:"required,oneof=new in_progress quoted closed"`
}

// HandleConversations godoc
// @Summary      List conversations
// @Tags         Messages
// @Produce      json
// @Security     BearerAuth
// @Param        page    query     int     false  "Page number"
// @Param        status  query     string  false  "active or archived"
// @Success      200     {object}  pagination.Page[model.Conversation]
// @Router       /v1/conversations [get]
func (h *MessageHandler) HandleConversations(w http.ResponseWriter, r *http.Request) {
	status := model.ConversationStatus(r.URL.Query().Get("status"))
	page, err := h.messages.Conversations(r.Context(), queryInt(r, "page", 1), status)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}

// HandleThread godoc
// @Summary      List messages of a conversation
// @Tags         Messages
// @Produce      json
// @Security     BearerAuth
// @Param        conversationID  path      int  true   "Conversation ID"
// @Param        page            query     int  false  "Page number"
// @Success      200             {object}  pagination.Page[model.Message]
// @Router       /v1/conversations/{conversationID}/messages [get]
func (h *MessageHandler) HandleThread(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "conversationID")
	if !ok {
		return
	}
	page, err := h.messages.Thread(r.Context(), id, queryInt(r, "page", 1))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, page)
}

// HandleSend godoc
// @Summary      Send a message
// @Tags         Messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        conversationID  path      int                       true  "Conversation ID"
// @Param        message         body      model.SendMessageRequest  true  "Message"
// @Success      201             {object}  model.Message
// @Failure      400             {object}  ErrorResponse
// @Router       /v1/conversations/{conversationID}/messages [post]
func (h *MessageHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "conversationID")
	if !ok {
		return
	}
	var req model.SendMessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}
	user, err := h.auth.CurrentUser(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	sender := model.Participant{ID: user.ID, Name: user.Name, Role: user.Role}
	msg, err := h.messages.Send(r.Context(), id, sender, req.Body)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, msg)
}

// HandleMarkRead godoc
// @Summary      Mark a conversation read
// @Tags         Messages
// @Produce      json
// @Security     BearerAuth
// @Param        conversationID  path      int  true  "Conversation ID"
// @Success      200             {object}  StatusResponse
// @Router       /v1/conversations/{conversationID}/read [post]
func (h *MessageHandler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "conversationID")
	if !ok {
		return
	}
	if err := h.messages.MarkRead(r.Context(), id); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleUnreadCount godoc
// @Summary      Unread message count
// @Tags         Messages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.UnreadCount
// @Router       /v1/messages/unread-count [get]
func (h *MessageHandler) HandleUnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.messages.UnreadCount(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, count)
}

// HandleInquiryStatus godoc
// @Summary      Update an inquiry status
// @Tags         Messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        inquiryID  path      int                   true  "Inquiry ID"
// @Param        status     body      InquiryStatusRequest  true  "New status"
// @Success      200        {object}  model.Inquiry
// @Failure      400        {object}  ErrorResponse
// @Router       /v1/inquiries/{inquiryID} [patch]
func (h *MessageHandler) HandleInquiryStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "inquiryID")
	if !ok {
		return
	}
	var req InquiryStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}
	inquiry, err := h.messages.UpdateInquiryStatus(r.Context(), id, req.Status)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, inquiry)
}
