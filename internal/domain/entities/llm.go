package entities

// ProviderModels holds the three model slots of a provider.
// Only Primary is used for section generation.
type ProviderModels struct {
	Primary  string `yaml:"primary" json:"primary"`
	Fallback string `yaml:"fallback" json:"fallback"`
	Fast     string `yaml:"fast" json:"fast"`
}

// ProviderConfig is the static configuration of one LLM vendor.
type ProviderConfig struct {
	ID        string         `yaml:"id" json:"id"`
	BaseURL   string         `yaml:"base_url" json:"base_url"`
	APIKeyEnv string         `yaml:"api_key_env" json:"api_key_env"`
	Models    ProviderModels `yaml:"models" json:"models"`
	JSONMode  bool           `yaml:"json_mode" json:"json_mode"`
}

// ModelPrice is USD per million tokens.
type ModelPrice struct {
	Input  float64 `yaml:"input" json:"input"`
	Output float64 `yaml:"output" json:"output"`
}

// CostBreakdown is the dollar cost of one call.
type CostBreakdown struct {
	InputCost  float64 `json:"input_cost"`
	OutputCost float64 `json:"output_cost"`
	TotalCost  float64 `json:"total_cost"`
}

// ChatRole of a message.
type ChatRole string

const (
	ChatRoleSystem ChatRole = "system"
	ChatRoleUser   ChatRole = "user"
)

type ChatMessage struct {
	Role    ChatRole
	Content string
}

// LLMRequest is the vendor-neutral chat completion request.
type LLMRequest struct {
	Model       string
	Messages    []ChatMessage
	Temperature float64
	MaxTokens   int
	JSONMode    bool
}

// LLMResponse is the normalized reply. Success=false carries Error and,
// when the vendor answered, StatusCode.
type LLMResponse struct {
	Success      bool
	Content      string
	InputTokens  int
	OutputTokens int
	Error        string
	StatusCode   int
}

// Prompt is the rendered system/user pair for one section.
type Prompt struct {
	System string
	User   string
}

// GenerationContext is the in-memory state of one run: the inputs plus every
// section generated so far. It is never persisted on its own.
type GenerationContext struct {
	Idea     string
	Answers  map[string]any
	Branding map[string]any
	Sections map[string]SectionContent
}

// NewGenerationContext starts an empty context for a session.
func NewGenerationContext(s GenerationSession) *GenerationContext {
	return &GenerationContext{
		Idea:     s.Idea,
		Answers:  s.Answers,
		Branding: s.Branding,
		Sections: make(map[string]SectionContent),
	}
}
