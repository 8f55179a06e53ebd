package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
	"github.com/acg-data/bizgenius-sub001/internal/usecase/interfaces"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"
)

// DefaultRequestTimeout bounds a single chat completion call.
const DefaultRequestTimeout = 60 * time.Second

// OpenAICompatibleProvider talks to any vendor exposing an OpenAI-style
// /chat/completions endpoint. SDK retries are disabled: retry and failover
// belong to the report generator.
type OpenAICompatibleProvider struct {
	cfg        entities.ProviderConfig
	httpClient *http.Client
	timeout    time.Duration
	getenv     func(string) string
	siteURL    string
	siteName   string
}

var _ interfaces.ILLMProvider = (*OpenAICompatibleProvider)(nil)

type ProviderOption func(*OpenAICompatibleProvider)

func WithRequestTimeout(d time.Duration) ProviderOption {
	return func(p *OpenAICompatibleProvider) {
		if d > 0 {
			p.timeout = d
		}
	}
}

func WithHTTPClient(c *http.Client) ProviderOption {
	return func(p *OpenAICompatibleProvider) { p.httpClient = c }
}

// WithSiteIdentity sets the attribution headers some vendors rank by.
func WithSiteIdentity(siteURL, siteName string) ProviderOption {
	return func(p *OpenAICompatibleProvider) {
		p.siteURL = siteURL
		p.siteName = siteName
	}
}

// WithEnvLookup replaces os.Getenv for API key resolution.
func WithEnvLookup(getenv func(string) string) ProviderOption {
	return func(p *OpenAICompatibleProvider) { p.getenv = getenv }
}

func NewOpenAICompatibleProvider(cfg entities.ProviderConfig, opts ...ProviderOption) *OpenAICompatibleProvider {
	p := &OpenAICompatibleProvider{
		cfg:     cfg,
		timeout: DefaultRequestTimeout,
		getenv:  os.Getenv,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.httpClient == nil {
		p.httpClient = NewPooledHTTPClient(10, p.timeout)
	}
	return p
}

func (p *OpenAICompatibleProvider) ID() string {
	return p.cfg.ID
}

func (p *OpenAICompatibleProvider) Generate(ctx context.Context, req entities.LLMRequest) (entities.LLMResponse, error) {
	apiKey := strings.TrimSpace(p.getenv(p.cfg.APIKeyEnv))
	if apiKey == "" {
		log.Printf("[llm][provider] missing api key provider=%s env=%s", p.cfg.ID, p.cfg.APIKeyEnv)
		return entities.LLMResponse{
			Success: false,
			Error:   fmt.Sprintf("%s API key not configured (%s)", p.cfg.ID, p.cfg.APIKeyEnv),
		}, nil
	}

	client := openai.NewClient(p.clientOptions(apiKey)...)
	params := p.buildParams(req)

	log.Printf("[llm][provider] request start provider=%s model=%s max_tokens=%d json_mode=%t", p.cfg.ID, req.Model, req.MaxTokens, params.ResponseFormat.OfJSONObject != nil)
	completion, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			msg := strings.TrimSpace(apiErr.Message)
			if msg == "" {
				msg = http.StatusText(apiErr.StatusCode)
			}
			log.Printf("[llm][provider] api error provider=%s status=%d msg=%q", p.cfg.ID, apiErr.StatusCode, msg)
			return entities.LLMResponse{
				Success:    false,
				Error:      fmt.Sprintf("%s API error (status %d): %s", p.cfg.ID, apiErr.StatusCode, msg),
				StatusCode: apiErr.StatusCode,
			}, nil
		}
		log.Printf("[llm][provider] transport error provider=%s err=%v", p.cfg.ID, err)
		return entities.LLMResponse{}, fmt.Errorf("%s request failed: %w", p.cfg.ID, err)
	}

	content := ""
	if len(completion.Choices) > 0 {
		content = completion.Choices[0].Message.Content
	}
	if strings.TrimSpace(content) == "" {
		log.Printf("[llm][provider] empty content provider=%s model=%s", p.cfg.ID, req.Model)
		return entities.LLMResponse{
			Success:    false,
			Error:      fmt.Sprintf("%s returned empty content", p.cfg.ID),
			StatusCode: http.StatusOK,
		}, nil
	}

	out := entities.LLMResponse{
		Success:      true,
		Content:      content,
		InputTokens:  int(completion.Usage.PromptTokens),
		OutputTokens: int(completion.Usage.CompletionTokens),
		StatusCode:   http.StatusOK,
	}
	log.Printf("[llm][provider] request success provider=%s model=%s input_tokens=%d output_tokens=%d", p.cfg.ID, req.Model, out.InputTokens, out.OutputTokens)
	return out, nil
}

func (p *OpenAICompatibleProvider) clientOptions(apiKey string) []option.RequestOption {
	baseURL := p.cfg.BaseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithHTTPClient(p.httpClient),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(p.timeout),
	}
	if p.siteURL != "" {
		opts = append(opts, option.WithHeader("HTTP-Referer", p.siteURL))
	}
	if p.siteName != "" {
		opts = append(opts, option.WithHeader("X-Title", p.siteName))
	}
	return opts
}

// buildParams drops response_format for vendors that reject it.
func (p *OpenAICompatibleProvider) buildParams(req entities.LLMRequest) openai.ChatCompletionNewParams {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case entities.ChatRoleSystem:
			messages = append(messages, openai.SystemMessage(m.Content))
		default:
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(req.Model),
		Messages:    messages,
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.JSONMode && p.cfg.JSONMode {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}
	return params
}

// NewPooledHTTPClient creates an http.Client with connection pooling shared by
// all calls to one vendor.
func NewPooledHTTPClient(poolSize int, timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:          poolSize,
			MaxIdleConnsPerHost:   poolSize,
			IdleConnTimeout:       90 * time.Second,
			ResponseHeaderTimeout: timeout,
			ForceAttemptHTTP2:     true,
		},
	}
}
