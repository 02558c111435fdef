package http

import (
	"fmt"
	"net/http"

	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

// List conversations, most recently active first
// (GET /api/conversations)
func (api TravelAdvisorServer) ListConversations(w http.ResponseWriter, r *http.Request) {
	params := ListConversationsParams{Page: defaultPage, PageSize: defaultPageSize}
	if err := runtime.BindQueryParameter("form", true, false, "page", r.URL.Query(), &params.Page); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid format for parameter page: %s", err)))
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "page_size", r.URL.Query(), &params.PageSize); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid format for parameter page_size: %s", err)))
		return
	}

	conversations, hasMore, err := api.ListConversationsUseCase.Query(r.Context(), params.Page, params.PageSize)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	resp := ConversationListResp{
		Conversations: make([]Conversation, len(conversations)),
		Page:          params.Page,
	}

	for i, c := range conversations {
		resp.Conversations[i] = toConversation(c)
	}
	if hasMore {
		nextPage := params.Page + 1
		resp.NextPage = &nextPage
	}
	if params.Page > 1 {
		prevPage := params.Page - 1
		resp.PreviousPage = &prevPage
	}

	respondJSON(w, http.StatusOK, resp)
}

// List the messages of a conversation
// (GET /api/conversations/{conversation_id}/messages)
func (api TravelAdvisorServer) ListChatMessages(w http.ResponseWriter, r *http.Request) {
	conversationId, ok := bindConversationID(w, r)
	if !ok {
		return
	}

	params := ListChatMessagesParams{}
	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid format for parameter limit: %s", err)))
		return
	}
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	messages, hasMore, err := api.ListChatMessagesUseCase.Query(r.Context(), conversationId, limit)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	resp := ChatHistoryResp{
		ConversationId: conversationId,
		Messages:       []ChatMessage{},
		HasMore:        hasMore,
	}
	for _, msg := range messages {
		resp.Messages = append(resp.Messages, toChatMessage(msg))
	}

	respondJSON(w, http.StatusOK, resp)
}

// Delete a conversation
// (DELETE /api/conversations/{conversation_id})
func (api TravelAdvisorServer) DeleteConversation(w http.ResponseWriter, r *http.Request) {
	conversationId, ok := bindConversationID(w, r)
	if !ok {
		return
	}

	err := api.DeleteConversationUseCase.Execute(r.Context(), conversationId)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func bindConversationID(w http.ResponseWriter, r *http.Request) (openapi_types.UUID, bool) {
	var conversationId openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "conversation_id", r.PathValue("conversation_id"), &conversationId, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid format for parameter conversation_id: %s", err)))
		return conversationId, false
	}
	return conversationId, true
}
