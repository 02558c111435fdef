package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/adapters/inbound/mcpserver"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/telemetry"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/usecases"
	"github.com/rs/cors"
)

// MiddlewareFunc wraps an API handler.
type MiddlewareFunc func(http.Handler) http.Handler

// TravelAdvisorServer is the REST API HTTP server for the travel advisor.
type TravelAdvisorServer struct {
	Port                      int                         `config:"HTTP_PORT" default:"8080"`
	Logger                    *log.Logger                 `resolve:""`
	PassageIndex              domain.PassageIndex         `resolve:""`
	ToolRegistry              domain.ToolRegistry         `resolve:""`
	SendMessageUseCase        usecases.SendMessage        `resolve:""`
	ListConversationsUseCase  usecases.ListConversations  `resolve:""`
	ListChatMessagesUseCase   usecases.ListChatMessages   `resolve:""`
	DeleteConversationUseCase usecases.DeleteConversation `resolve:""`
	BuildBookIndexUseCase     usecases.BuildBookIndex     `resolve:""`
}

// Handler routes the API operations onto a new ServeMux, wrapping each
// operation with the given middlewares.
func Handler(api TravelAdvisorServer, middlewares ...MiddlewareFunc) *http.ServeMux {
	mux := http.NewServeMux()
	handle := func(pattern string, f http.HandlerFunc) {
		var h http.Handler = f
		for _, m := range middlewares {
			h = m(h)
		}
		mux.Handle(pattern, h)
	}

	handle("POST /api/chat/messages", api.SendMessage)
	handle("POST /api/chat/stream", api.StreamChat)
	handle("GET /api/conversations", api.ListConversations)
	handle("GET /api/conversations/{conversation_id}/messages", api.ListChatMessages)
	handle("DELETE /api/conversations/{conversation_id}", api.DeleteConversation)
	handle("POST /api/index/rebuild", api.RebuildIndex)
	mux.HandleFunc("GET /healthz", api.Health)

	return mux
}

// Run starts the HTTP server for the TravelAdvisorServer.
func (api TravelAdvisorServer) Run(ctx context.Context) error {
	mux := Handler(api, telemetry.Middleware("traveladvisor-api"))

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("/introspect", IntrospectHandler)

	// Expose the tool registry to MCP clients
	mux.Handle("/mcp", mcpserver.NewStreamableHandler(mcpserver.NewServer(api.ToolRegistry, api.Logger)))

	// Apply CORS at the top-level so preflight requests hit it, too.
	h := cors.AllowAll().Handler(mux)

	s := &http.Server{
		Handler: h,
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("TravelAdvisorServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("TravelAdvisorServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("TravelAdvisorServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the TravelAdvisorServer is ready by performing a health check.
func (api TravelAdvisorServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://:%d/healthz", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

// Health reports whether the server can answer questions.
// (GET /healthz)
func (api TravelAdvisorServer) Health(w http.ResponseWriter, r *http.Request) {
	chunks := api.PassageIndex.Len()
	if chunks == 0 {
		respondJSON(w, http.StatusServiceUnavailable, HealthResp{Status: "index_unavailable"})
		return
	}
	respondJSON(w, http.StatusOK, HealthResp{Status: "ok", IndexChunks: chunks})
}
