package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/usecases"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTravelAdvisorServer_SendMessage(t *testing.T) {
	conversationID := uuid.MustParse("6f1c2d9e-8a4b-4c1d-9e2f-3a4b5c6d7e8f")

	tests := map[string]struct {
		requestBody    []byte
		setupUsecases  func(*usecases.MockSendMessage)
		expectedStatus int
		expectedBody   *SendMessageResp
		expectedError  *ErrorResp
	}{
		"new-conversation": {
			requestBody: []byte(`{"message":"What did Twain think of Venice?"}`),
			setupUsecases: func(m *usecases.MockSendMessage) {
				m.EXPECT().
					Execute(mock.Anything, usecases.SendMessageRequest{Message: "What did Twain think of Venice?"}, mock.Anything).
					Return(usecases.SendMessageResult{
						ConversationID:      conversationID,
						ConversationCreated: true,
						Answer:              "He found it a little disappointing.",
						Outcome:             usecases.OutcomeAnswered,
					}, nil).
					Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody: &SendMessageResp{
				ConversationId:      conversationID,
				ConversationCreated: true,
				Response:            "He found it a little disappointing.",
				Outcome:             "answered",
			},
		},
		"existing-conversation": {
			requestBody: []byte(`{"message":"And Rome?","conversation_id":"` + conversationID.String() + `"}`),
			setupUsecases: func(m *usecases.MockSendMessage) {
				m.EXPECT().
					Execute(mock.Anything, usecases.SendMessageRequest{Message: "And Rome?", ConversationID: &conversationID}, mock.Anything).
					Return(usecases.SendMessageResult{
						ConversationID: conversationID,
						Answer:         "The Coliseum impressed him.",
						Outcome:        usecases.OutcomeAnswered,
					}, nil).
					Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody: &SendMessageResp{
				ConversationId: conversationID,
				Response:       "The Coliseum impressed him.",
				Outcome:        "answered",
			},
		},
		"invalid-json": {
			requestBody:    []byte(`{invalid json}`),
			setupUsecases:  func(m *usecases.MockSendMessage) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  &ErrorResp{Error: Error{Code: BADREQUEST, Message: "invalid request body"}},
		},
		"empty-message": {
			requestBody: []byte(`{"message":"  "}`),
			setupUsecases: func(m *usecases.MockSendMessage) {
				m.EXPECT().
					Execute(mock.Anything, mock.Anything, mock.Anything).
					Return(usecases.SendMessageResult{}, domain.NewValidationErr("message cannot be empty")).
					Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  &ErrorResp{Error: Error{Code: BADREQUEST, Message: "message cannot be empty"}},
		},
		"conversation-not-found": {
			requestBody: []byte(`{"message":"Hi","conversation_id":"` + conversationID.String() + `"}`),
			setupUsecases: func(m *usecases.MockSendMessage) {
				m.EXPECT().
					Execute(mock.Anything, mock.Anything, mock.Anything).
					Return(usecases.SendMessageResult{}, domain.NewNotFoundErr("conversation not found")).
					Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  &ErrorResp{Error: Error{Code: NOTFOUND, Message: "conversation not found"}},
		},
		"use-case-error": {
			requestBody: []byte(`{"message":"Hi"}`),
			setupUsecases: func(m *usecases.MockSendMessage) {
				m.EXPECT().
					Execute(mock.Anything, mock.Anything, mock.Anything).
					Return(usecases.SendMessageResult{}, errors.New("database error")).
					Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  &ErrorResp{Error: Error{Code: INTERNALERROR, Message: "internal server error"}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sendMessage := usecases.NewMockSendMessage(t)
			tt.setupUsecases(sendMessage)

			server := TravelAdvisorServer{
				Logger:             log.New(io.Discard, "", 0),
				SendMessageUseCase: sendMessage,
			}

			req := httptest.NewRequest(http.MethodPost, "/api/chat/messages", bytes.NewReader(tt.requestBody))
			w := httptest.NewRecorder()

			Handler(server).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedBody != nil {
				var response SendMessageResp
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

func TestTravelAdvisorServer_StreamChat(t *testing.T) {
	conversationID := uuid.MustParse("6f1c2d9e-8a4b-4c1d-9e2f-3a4b5c6d7e8f")

	tests := map[string]struct {
		requestBody    []byte
		setupUsecases  func(*usecases.MockSendMessage)
		expectedStatus int
		expectedEvents []string
		expectedError  *ErrorResp
	}{
		"success": {
			requestBody: []byte(`{"message":"Weather in Naples?"}`),
			setupUsecases: func(m *usecases.MockSendMessage) {
				m.EXPECT().
					Execute(mock.Anything, usecases.SendMessageRequest{Message: "Weather in Naples?"}, mock.Anything).
					RunAndReturn(func(ctx context.Context, req usecases.SendMessageRequest, cb domain.AssistantEventCallback) (usecases.SendMessageResult, error) {
						_ = cb(domain.AssistantEventType_TurnStarted, domain.AssistantTurnStarted{ConversationID: conversationID, ConversationCreated: true})
						_ = cb(domain.AssistantEventType_ToolCallStarted, domain.AssistantToolCallStarted{ID: "call-1", Name: "get_weather"})
						_ = cb(domain.AssistantEventType_TurnCompleted, domain.AssistantTurnCompleted{Content: "Sunny, 24°C."})
						return usecases.SendMessageResult{ConversationID: conversationID, Answer: "Sunny, 24°C."}, nil
					}).
					Once()
			},
			expectedStatus: http.StatusOK,
			expectedEvents: []string{"event: turn_started", "event: tool_call_started", "event: turn_completed", `"content":"Sunny, 24°C."`},
		},
		"invalid-json": {
			requestBody:    []byte(`{invalid json}`),
			setupUsecases:  func(m *usecases.MockSendMessage) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  &ErrorResp{Error: Error{Code: BADREQUEST, Message: "invalid request body"}},
		},
		"error-before-first-event": {
			requestBody: []byte(`{"message":"Hi","conversation_id":"` + conversationID.String() + `"}`),
			setupUsecases: func(m *usecases.MockSendMessage) {
				m.EXPECT().
					Execute(mock.Anything, mock.Anything, mock.Anything).
					Return(usecases.SendMessageResult{}, domain.NewNotFoundErr("conversation not found")).
					Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  &ErrorResp{Error: Error{Code: NOTFOUND, Message: "conversation not found"}},
		},
		"error-after-first-event": {
			requestBody: []byte(`{"message":"Hi"}`),
			setupUsecases: func(m *usecases.MockSendMessage) {
				m.EXPECT().
					Execute(mock.Anything, mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, req usecases.SendMessageRequest, cb domain.AssistantEventCallback) (usecases.SendMessageResult, error) {
						_ = cb(domain.AssistantEventType_TurnStarted, domain.AssistantTurnStarted{ConversationID: conversationID})
						return usecases.SendMessageResult{}, errors.New("database error")
					}).
					Once()
			},
			expectedStatus: http.StatusOK,
			expectedEvents: []string{"event: turn_started", "event: error", `"code":"INTERNAL_ERROR"`},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sendMessage := usecases.NewMockSendMessage(t)
			tt.setupUsecases(sendMessage)

			server := TravelAdvisorServer{
				Logger:             log.New(io.Discard, "", 0),
				SendMessageUseCase: sendMessage,
			}

			req := httptest.NewRequest(http.MethodPost, "/api/chat/stream", bytes.NewReader(tt.requestBody))
			w := httptest.NewRecorder()

			Handler(server).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			body := w.Body.String()
			for _, event := range tt.expectedEvents {
				assert.Contains(t, body, event)
			}
			if len(tt.expectedEvents) > 0 {
				assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
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
