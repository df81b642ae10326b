package generation

// Message is a single turn in a chat conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// generateRequest is the payload for POST /api/generate
type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	System  string          `json:"system,omitempty"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	NumPredict  int     `json:"num_predict,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
	TopP        float64 `json:"top_p,omitempty"`
}

// generateResponse is the non-streaming response from POST /api/generate
type generateResponse struct {
	Model     string `json:"model"`
	Response  string `json:"response"`
	Done      bool   `json:"done"`
	EvalCount int    `json:"eval_count"`
}

// tagsResponse is the response from GET /api/tags
type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// CodeResult is the outcome of a code generation request
type CodeResult struct {
	Response        string `json:"response"`
	Language        string `json:"language"`
	TokensGenerated int    `json:"tokens_generated"`
	Model           string `json:"model"`
}

// ChatResult is the outcome of a chat generation request
type ChatResult struct {
	Response        string `json:"response"`
	TokensGenerated int    `json:"tokens_generated"`
	Model           string `json:"model"`
}

// TranslationResult is the outcome of a code translation request
type TranslationResult struct {
	TranslatedCode string `json:"translated_code"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
	Model          string `json:"model"`
}

// Language describes one supported target language for generation
type Language struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}
