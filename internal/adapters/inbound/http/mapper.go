package http

import (
	"errors"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toError(err error) ErrorResp {
	errResp := ErrorResp{}

	var validationErr *domain.ValidationErr
	var notFoundErr *domain.NotFoundErr
	switch {
	case errors.As(err, &validationErr):
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = validationErr.Error()
	case errors.As(err, &notFoundErr):
		errResp.Error.Code = NOTFOUND
		errResp.Error.Message = notFoundErr.Error()
	case errors.Is(err, domain.ErrIndexNotInitialized), errors.Is(err, domain.ErrIndexUnavailable):
		errResp.Error.Code = INDEXUNAVAILABLE
		errResp.Error.Message = "the book index is not available"
	default:
		errResp.Error.Code = INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func badRequest(message string) ErrorResp {
	return ErrorResp{
		Error: Error{
			Code:    BADREQUEST,
			Message: message,
		},
	}
}

func toConversation(c domain.Conversation) Conversation {
	return Conversation{
		Id:            openapi_types.UUID(c.ID),
		Title:         c.Title,
		LastMessageAt: c.LastMessageAt,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toChatMessage(msg domain.ChatMessage) ChatMessage {
	return ChatMessage{
		Id:        msg.ID,
		Role:      ChatMessageRole(msg.ChatRole),
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}
