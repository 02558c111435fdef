package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/adapters/inbound/mcpserver"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/adapters/inbound/oneshot"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/adapters/outbound/gutenberg"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/adapters/outbound/openweather"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/assistant"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/chunker"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/telemetry"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/usecases"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/vectorindex"
)

// platformInitializers set up logging, telemetry, outbound HTTP and configuration.
func platformInitializers() []symbiont.Initializer {
	return []symbiont.Initializer{
		&log.InitLogger{},
		&telemetry.InitOpenTelemetry{},
		&telemetry.InitHttpClient{},
		&config.InitVaultProvider{},
	}
}

// indexInitializers set up the book source and the passage index, without loading it.
func indexInitializers() []symbiont.Initializer {
	return []symbiont.Initializer{
		&modelrunner.InitAssistantClient{},
		&gutenberg.InitBookSource{},
		&chunker.InitTextChunker{},
		&vectorindex.InitPassageIndex{},
		&usecases.InitBuildBookIndex{},
	}
}

// toolInitializers load the index and register the tool registry.
func toolInitializers() []symbiont.Initializer {
	return []symbiont.Initializer{
		&usecases.InitBookIndex{},
		&usecases.InitSearchPassages{},
		&openweather.InitWeatherProvider{},
		&assistant.InitToolRegistry{},
	}
}

// NewTravelAdvisorApp creates the HTTP service: chat API, conversations, MCP endpoint
// and the book watcher.
func NewTravelAdvisorApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(platformInitializers()...).
		Initialize(
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&postgres.InitChatMessageRepository{},
			&postgres.InitConversationRepository{},
			&time.InitCurrentTimeProvider{},
		).
		Initialize(indexInitializers()...).
		Initialize(toolInitializers()...).
		Initialize(
			&usecases.InitOrchestrator{},
			&usecases.InitSendMessage{},
			&usecases.InitListConversations{},
			&usecases.InitListChatMessages{},
			&usecases.InitDeleteConversation{},
		).
		Host(
			&http.TravelAdvisorServer{},
			&workers.BookIndexRefresher{},
		).
		Introspect(&MermaidGraphIntrospector{})
}

// NewIndexApp creates an app that rebuilds the book index once.
func NewIndexApp(done chan<- oneshot.Result, initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(platformInitializers()...).
		Initialize(indexInitializers()...).
		Host(&oneshot.IndexBuilder{Done: done})
}

// NewAskApp creates an app that answers a single question without persistence.
func NewAskApp(answerer *oneshot.QuestionAnswerer, initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(platformInitializers()...).
		Initialize(&time.InitCurrentTimeProvider{}).
		Initialize(indexInitializers()...).
		Initialize(toolInitializers()...).
		Initialize(&usecases.InitOrchestrator{}).
		Host(answerer)
}

// NewMCPApp creates an app serving the tool registry over MCP stdio.
func NewMCPApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(platformInitializers()...).
		Initialize(indexInitializers()...).
		Initialize(toolInitializers()...).
		Host(&mcpserver.StdioServer{})
}
