package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/common"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/usecases"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTravelAdvisorServer_ListConversations(t *testing.T) {
	fixedTime := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	conversation := domain.Conversation{
		ID:            uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		Title:         "What did Twain think of Venice...",
		LastMessageAt: &fixedTime,
		CreatedAt:     fixedTime,
		UpdatedAt:     fixedTime,
	}

	tests := map[string]struct {
		query          string
		setupUsecases  func(*usecases.MockListConversations)
		expectedStatus int
		expectedBody   *ConversationListResp
		expectedError  *ErrorResp
	}{
		"defaults": {
			query: "",
			setupUsecases: func(m *usecases.MockListConversations) {
				m.EXPECT().
					Query(mock.Anything, 1, 20).
					Return([]domain.Conversation{conversation}, false, nil).
					Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody: &ConversationListResp{
				Conversations: []Conversation{toConversation(conversation)},
				Page:          1,
			},
		},
		"next-and-previous-page": {
			query: "?page=2&page_size=1",
			setupUsecases: func(m *usecases.MockListConversations) {
				m.EXPECT().
					Query(mock.Anything, 2, 1).
					Return([]domain.Conversation{conversation}, true, nil).
					Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody: &ConversationListResp{
				Conversations: []Conversation{toConversation(conversation)},
				Page:          2,
				NextPage:      common.Ptr(3),
				PreviousPage:  common.Ptr(1),
			},
		},
		"invalid-page": {
			query:          "?page=abc",
			setupUsecases:  func(m *usecases.MockListConversations) {},
			expectedStatus: http.StatusBadRequest,
		},
		"use-case-validation-error": {
			query: "?page=0",
			setupUsecases: func(m *usecases.MockListConversations) {
				m.EXPECT().
					Query(mock.Anything, 0, 20).
					Return(nil, false, domain.NewValidationErr("page must be greater than 0")).
					Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  &ErrorResp{Error: Error{Code: BADREQUEST, Message: "page must be greater than 0"}},
		},
		"use-case-error": {
			setupUsecases: func(m *usecases.MockListConversations) {
				m.EXPECT().
					Query(mock.Anything, 1, 20).
					Return(nil, false, errors.New("database error")).
					Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  &ErrorResp{Error: Error{Code: INTERNALERROR, Message: "internal server error"}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			listConversations := usecases.NewMockListConversations(t)
			tt.setupUsecases(listConversations)

			server := TravelAdvisorServer{ListConversationsUseCase: listConversations}

			req := httptest.NewRequest(http.MethodGet, "/api/conversations"+tt.query, nil)
			w := httptest.NewRecorder()

			Handler(server).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedBody != nil {
				var response ConversationListResp
				err := json.Unmarshal(w.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.Equal(t, *tt.expectedBody, response)
			}

			if tt.expectedError != nil {
				var response ErrorResp
				err := json.Unmarshal(w.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.Equal(t, *tt.expectedError, response)
			}
		})
	}
}

func TestTravelAdvisorServer_ListChatMessages(t *testing.T) {
	fixedTime := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	conversationID := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	message := domain.ChatMessage{
		ID:             uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
		ConversationID: conversationID,
		ChatRole:       domain.ChatRole_User,
		Content:        "What did Twain think of Venice?",
		CreatedAt:      fixedTime,
	}

	tests := map[string]struct {
		path           string
		setupUsecases  func(*usecases.MockListChatMessages)
		expectedStatus int
		expectedBody   *ChatHistoryResp
		expectedError  *ErrorResp
	}{
		"success": {
			path: "/api/conversations/" + conversationID.String() + "/messages",
			setupUsecases: func(m *usecases.MockListChatMessages) {
				m.EXPECT().
					Query(mock.Anything, conversationID, 0).
					Return([]domain.ChatMessage{message}, false, nil).
					Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody: &ChatHistoryResp{
				ConversationId: conversationID,
				Messages: []ChatMessage{{
					Id:        message.ID,
					Role:      "user",
					Content:   "What did Twain think of Venice?",
					CreatedAt: fixedTime,
				}},
			},
		},
		"with-limit": {
			path: "/api/conversations/" + conversationID.String() + "/messages?limit=5",
			setupUsecases: func(m *usecases.MockListChatMessages) {
				m.EXPECT().
					Query(mock.Anything, conversationID, 5).
					Return([]domain.ChatMessage{}, true, nil).
					Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody: &ChatHistoryResp{
				ConversationId: conversationID,
				Messages:       []ChatMessage{},
				HasMore:        true,
			},
		},
		"invalid-conversation-id": {
			path:           "/api/conversations/not-a-uuid/messages",
			setupUsecases:  func(m *usecases.MockListChatMessages) {},
			expectedStatus: http.StatusBadRequest,
		},
		"not-found": {
			path: "/api/conversations/" + conversationID.String() + "/messages",
			setupUsecases: func(m *usecases.MockListChatMessages) {
				m.EXPECT().
					Query(mock.Anything, conversationID, 0).
					Return(nil, false, domain.NewNotFoundErr("conversation not found")).
					Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  &ErrorResp{Error: Error{Code: NOTFOUND, Message: "conversation not found"}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			listChatMessages := usecases.NewMockListChatMessages(t)
			tt.setupUsecases(listChatMessages)

			server := TravelAdvisorServer{ListChatMessagesUseCase: listChatMessages}

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			Handler(server).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedBody != nil {
				var response ChatHistoryResp
				err := json.Unmarshal(w.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.Equal(t, *tt.expectedBody, response)
			}

			if tt.expectedError != nil {
				var response ErrorResp
				err := json.Unmarshal(w.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.Equal(t, *tt.expectedError, response)
			}
		})
	}
}

func TestTravelAdvisorServer_DeleteConversation(t *testing.T) {
	conversationID := uuid.MustParse("00000000-0000-0000-0000-000000000001")

	tests := map[string]struct {
		setupUsecases  func(*usecases.MockDeleteConversation)
		expectedStatus int
		expectedError  *ErrorResp
	}{
		"success": {
			setupUsecases: func(m *usecases.MockDeleteConversation) {
				m.EXPECT().
					Execute(mock.Anything, conversationID).
					Return(nil).
					Once()
			},
			expectedStatus: http.StatusNoContent,
		},
		"not-found": {
			setupUsecases: func(m *usecases.MockDeleteConversation) {
				m.EXPECT().
					Execute(mock.Anything, conversationID).
					Return(domain.NewNotFoundErr("conversation not found")).
					Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  &ErrorResp{Error: Error{Code: NOTFOUND, Message: "conversation not found"}},
		},
		"use-case-error": {
			setupUsecases: func(m *usecases.MockDeleteConversation) {
				m.EXPECT().
					Execute(mock.Anything, conversationID).
					Return(errors.New("database error")).
					Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  &ErrorResp{Error: Error{Code: INTERNALERROR, Message: "internal server error"}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			deleteConversation := usecases.NewMockDeleteConversation(t)
			tt.setupUsecases(deleteConversation)

			server := TravelAdvisorServer{DeleteConversationUseCase: deleteConversation}

			req := httptest.NewRequest(http.MethodDelete, "/api/conversations/"+conversationID.String(), nil)
			w := httptest.NewRecorder()

			Handler(server).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedError != nil {
				var response ErrorResp
				err := json.Unmarshal(w.Body.Bytes(), &response)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError.Error, response.Error)
			}
		})
	}
}
