package handler

import (
	"net/http"
	"strconv"
	"time"

	"localhelp/internal/delivery/http/middleware"
	"localhelp/internal/delivery/http/response"
	"localhelp/internal/domain/entity"
	domainerrors "localhelp/internal/domain/errors"
	"localhelp/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ConversationHandler handles the conversation endpoints.
type ConversationHandler struct {
	conversationUsecase usecase.ConversationUsecase
}

// NewConversationHandler is the constructor for ConversationHandler.
func NewConversationHandler(conversationUsecase usecase.ConversationUsecase) *ConversationHandler {
	return &ConversationHandler{conversationUsecase: conversationUsecase}
}

type startConversationRequest struct {
	PostID string `json:"postId" validate:"required,uuid"`
	// CounterpartID names the other participant. Left empty it defaults to
	// the post's owner; owners set it to reply to a prior requester.
	CounterpartID string `json:"counterpartId"`
}

type conversationResponse struct {
	ID          uuid.UUID        `json:"id"`
	PostID      uuid.UUID        `json:"postId"`
	SenderID    string           `json:"senderId"`
	ReceiverID  string           `json:"receiverId"`
	Status      string           `json:"status"`
	PostSkill   string           `json:"postSkill,omitempty"`
	Counterpart *profileResponse `json:"counterpart,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type conversationStatusResponse struct {
	Exists         bool       `json:"exists"`
	ConversationID *uuid.UUID `json:"conversationId,omitempty"`
}

func toConversationResponse(conversation *entity.Conversation) *conversationResponse {
	return &conversationResponse{
		ID:         conversation.ID,
		PostID:     conversation.PostID,
		SenderID:   conversation.SenderID,
		ReceiverID: conversation.ReceiverID,
		Status:     string(conversation.Status),
		CreatedAt:  conversation.CreatedAt,
	}
}

// StartConversation handles POST /conversations. Repeating the call for the
// same post and pair returns the existing conversation with 200 instead of 201.
func (h *ConversationHandler) StartConversation(c echo.Context) error {
	var req startConversationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	postID, err := uuid.Parse(req.PostID)
	if err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("invalid post ID")
	}

	conversation, created, err := h.conversationUsecase.StartConversation(c.Request().Context(), middleware.UserID(c), postID, req.CounterpartID)
	if err != nil {
		return err
	}

	statusCode := http.StatusOK
	message := "Conversation already exists"
	if created {
		statusCode = http.StatusCreated
		message = "Conversation started"
	}

	return response.Success(c, statusCode, toConversationResponse(conversation), message)
}

// CheckStatus handles GET /conversations/status.
func (h *ConversationHandler) CheckStatus(c echo.Context) error {
	postID, err := uuid.Parse(c.QueryParam("post_id"))
	if err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("post_id must be a UUID")
	}

	conversation, exists, err := h.conversationUsecase.CheckConversation(c.Request().Context(), middleware.UserID(c), postID)
	if err != nil {
		return err
	}

	result := conversationStatusResponse{Exists: exists}
	if exists {
		result.ConversationID = &conversation.ID
	}

	return response.Success(c, http.StatusOK, result, "")
}

// ListConversations handles GET /conversations with keyset pagination.
func (h *ConversationHandler) ListConversations(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	var before *time.Time
	if raw := c.QueryParam("before"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return domainerrors.ErrInvalidInput.WithDetails("before must be an RFC 3339 timestamp")
		}
		before = &parsed
	}

	views, err := h.conversationUsecase.ListConversations(c.Request().Context(), middleware.UserID(c), limit, before)
	if err != nil {
		return err
	}

	results := make([]*conversationResponse, 0, len(views))
	for _, view := range views {
		item := toConversationResponse(view.Conversation)
		item.PostSkill = view.PostSkill
		item.Counterpart = toProfileResponse(view.Counterpart)
		results = append(results, item)
	}

	return response.Success(c, http.StatusOK, results, "")
}

// GetConversation handles GET /conversations/:id.
func (h *ConversationHandler) GetConversation(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("invalid conversation ID")
	}

	conversation, err := h.conversationUsecase.GetConversation(c.Request().Context(), middleware.UserID(c), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toConversationResponse(conversation), "")
}

// AcceptConversation handles PATCH /conversations/:id/accept.
func (h *ConversationHandler) AcceptConversation(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("invalid conversation ID")
	}

	conversation, err := h.conversationUsecase.AcceptConversation(c.Request().Context(), middleware.UserID(c), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toConversationResponse(conversation), "Conversation accepted")
}
