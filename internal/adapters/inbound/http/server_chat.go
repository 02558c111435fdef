package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/usecases"
)

// Send a chat message and wait for the answer
// (POST /api/chat/messages)
func (api TravelAdvisorServer) SendMessage(w http.ResponseWriter, r *http.Request) {
	req := SendMessageRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest("invalid request body"))
		return
	}

	res, err := api.SendMessageUseCase.Execute(r.Context(), usecases.SendMessageRequest{
		Message:        req.Message,
		ConversationID: req.ConversationId,
	}, nil)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, SendMessageResp{
		ConversationId:      res.ConversationID,
		ConversationCreated: res.ConversationCreated,
		Response:            res.Answer,
		Outcome:             res.Outcome,
	})
}

// Send a chat message and stream the turn events
// (POST /api/chat/stream)
func (api TravelAdvisorServer) StreamChat(w http.ResponseWriter, r *http.Request) {
	req := SendMessageRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest("invalid request body"))
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, ErrorResp{
			Error: Error{
				Code:    INTERNALERROR,
				Message: "streaming not supported",
			},
		})
		return
	}

	streaming := false
	writeEvent := func(eventType string, data any) error {
		if !streaming {
			w.Header().Set("Content-Type", "text/event-stream")
			w.Header().Set("Cache-Control", "no-cache")
			w.Header().Set("Connection", "keep-alive")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			streaming = true
		}

		dataBytes, err := json.Marshal(data)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(w, "event: %s\n", eventType)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(w, "data: %s\n\n", string(dataBytes))
		if err != nil {
			return err
		}
		flusher.Flush()
		return nil
	}

	_, err := api.SendMessageUseCase.Execute(r.Context(), usecases.SendMessageRequest{
		Message:        req.Message,
		ConversationID: req.ConversationId,
	}, func(eventType domain.AssistantEventType, data any) error {
		return writeEvent(string(eventType), data)
	})
	if err == nil {
		return
	}

	api.Logger.Printf("StreamChat: error during streaming: %v", err)
	if !streaming {
		respondError(w, toError(err))
		return
	}
	if r.Context().Err() != nil {
		return
	}
	_ = writeEvent("error", toError(err).Error)
}
