package modelrunner

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/domain"
	"github.com/cleitonmarx/symbiont-travel-advisor/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// AssistantClient adapts DRMAPIClient to the domain Assistant and SemanticEncoder interfaces.
type AssistantClient struct {
	client           DRMAPIClient
	embeddingFactory EmbeddingFactory
}

// NewAssistantClientAdapter creates a new adapter.
func NewAssistantClientAdapter(client DRMAPIClient) AssistantClient {
	return AssistantClient{client: client, embeddingFactory: embeddingFactory{}}
}

// RunTurnSync implements domain.Assistant.
func (a AssistantClient) RunTurnSync(ctx context.Context, req domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := a.client.Chat(spanCtx, toChatRequest(req))
	if err != nil {
		err = fmt.Errorf("%w: %w", domain.ErrModelInvocation, err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AssistantTurnResponse{}, err
	}
	if len(resp.Choices) == 0 {
		err := fmt.Errorf("%w: no choices in response", domain.ErrModelInvocation)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AssistantTurnResponse{}, err
	}

	msg := resp.Choices[0].Message
	res := domain.AssistantTurnResponse{Content: msg.Content}
	for _, tc := range msg.ToolCalls {
		// Some local runners omit call ids; tool results are matched by id.
		id := tc.ID
		if id == "" {
			id = uuid.NewString()
		}
		res.ToolCalls = append(res.ToolCalls, domain.ToolCall{
			ID:        id,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	if resp.Usage != nil {
		res.Usage = domain.AssistantUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	return res, nil
}

// VectorizeQuery implements domain.SemanticEncoder.
func (a AssistantClient) VectorizeQuery(ctx context.Context, model, query string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	prompt := a.embeddingFactory.Get(model).GenerateSearchPrompt(query)
	vec, err := a.embed(spanCtx, model, prompt)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}
	return vec, nil
}

// VectorizePassage implements domain.SemanticEncoder.
func (a AssistantClient) VectorizePassage(ctx context.Context, model string, chunk domain.Chunk) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	prompt := a.embeddingFactory.Get(model).GenerateIndexingPrompt(chunk)
	vec, err := a.embed(spanCtx, model, prompt)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}
	return vec, nil
}

func (a AssistantClient) embed(ctx context.Context, model, input string) (domain.EmbeddingVector, error) {
	if strings.TrimSpace(model) == "" {
		return domain.EmbeddingVector{}, errors.New("embedding model is required")
	}
	resp, err := a.client.Embeddings(ctx, EmbeddingsRequest{Model: model, Input: input})
	if err != nil {
		return domain.EmbeddingVector{}, err
	}
	if len(resp.Data) == 0 {
		return domain.EmbeddingVector{}, errors.New("no embedding data in response")
	}
	return domain.EmbeddingVector{
		Vector:      resp.Data[0].Embedding,
		TotalTokens: resp.Usage.TotalTokens,
	}, nil
}

func toChatRequest(req domain.AssistantTurnRequest) ChatRequest {
	adapterReq := ChatRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]ChatMessage, len(req.Messages)),
	}

	for i, msg := range req.Messages {
		adpMsg := ChatMessage{
			Role:       string(msg.Role),
			ToolCallID: msg.ToolCallID,
			Content:    msg.Content,
		}
		for _, call := range msg.ToolCalls {
			adpMsg.ToolCalls = append(adpMsg.ToolCalls, ToolCall{
				ID:   call.ID,
				Type: "function",
				Function: ToolCallFunction{
					Name:      call.Name,
					Arguments: call.Arguments,
				},
			})
		}
		adapterReq.Messages[i] = adpMsg
	}

	if len(req.AvailableTools) == 0 {
		return adapterReq
	}

	adapterReq.ToolChoice = "auto"
	adapterReq.Tools = make([]Tool, len(req.AvailableTools))
	for i, def := range req.AvailableTools {
		tool := Tool{
			Type: "function",
			Function: ToolFunc{
				Description: strings.TrimSpace(def.Description + " " + def.ComposeHint()),
				Name:        def.Name,
				Parameters: ToolFuncParameters{
					Type:       def.Input.Type,
					Properties: make(map[string]ToolFuncParameterDetail, len(def.Input.Fields)),
					Required:   def.Input.RequiredFields(),
				},
			},
		}
		for paramName, field := range def.Input.Fields {
			tool.Function.Parameters.Properties[paramName] = ToolFuncParameterDetail{
				Type:        field.Type,
				Description: field.Description,
				Enum:        field.Enum,
			}
		}
		adapterReq.Tools[i] = tool
	}

	return adapterReq
}

// InitAssistantClient initializes the assistant client dependency.
type InitAssistantClient struct {
	HttpClient *http.Client `resolve:""`
	ModelHost  string       `config:"LLM_MODEL_HOST"`
	APIKey     string       `config:"LLM_API_KEY" default:"-"`
}

// Initialize registers the chat assistant and the semantic encoder.
func (i InitAssistantClient) Initialize(ctx context.Context) (context.Context, error) {
	apiKey := i.APIKey
	if apiKey == "-" {
		apiKey = ""
	}
	adapter := NewAssistantClientAdapter(NewDRMAPIClient(i.ModelHost, apiKey, i.HttpClient))
	depend.Register[domain.Assistant](adapter)
	depend.Register[domain.SemanticEncoder](adapter)
	return ctx, nil
}
