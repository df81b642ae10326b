package docs

import (
	"github.com/go-swagno/swagno"
	"github.com/go-swagno/swagno/components/endpoint"
	"github.com/go-swagno/swagno/components/http/response"
	"github.com/go-swagno/swagno/components/mime"
)

// SignupResponse represents the response for a successful enrollment
type SignupResponse struct {
	Message string `json:"message" example:"User created successfully"`
	UserID  string `json:"user_id" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// LoginResponse represents the response for a successful login
type LoginResponse struct {
	Message    string  `json:"message" example:"Login successful"`
	UserID     string  `json:"user_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Similarity float64 `json:"similarity" example:"0.87"`
}

// CodeGenerationRequest represents a code generation request
type CodeGenerationRequest struct {
	Prompt      string  `json:"prompt" example:"binary search over a sorted slice"`
	Language    string  `json:"language" example:"go"`
	MaxTokens   int     `json:"max_tokens" example:"512"`
	Temperature float64 `json:"temperature" example:"0.3"`
}

// CodeGenerationResponse represents generated code
type CodeGenerationResponse struct {
	Response        string `json:"response" example:"func search(xs []int) int { ... }"`
	Language        string `json:"language" example:"go"`
	TokensGenerated int    `json:"tokens_generated" example:"42"`
	Model           string `json:"model" example:"codellama:7b"`
}

// ChatMessage represents one turn of a chat conversation
type ChatMessage struct {
	Role    string `json:"role" example:"user"`
	Content string `json:"content" example:"What is a goroutine?"`
}

// ChatGenerationRequest represents a chat generation request
type ChatGenerationRequest struct {
	Messages    []ChatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens" example:"500"`
	Temperature float64       `json:"temperature" example:"0.7"`
}

// ChatGenerationResponse represents a chat reply
type ChatGenerationResponse struct {
	Response        string `json:"response" example:"A goroutine is a lightweight thread."`
	TokensGenerated int    `json:"tokens_generated" example:"8"`
	Model           string `json:"model" example:"codellama:7b"`
}

// CodeTranslationRequest represents a code translation request
type CodeTranslationRequest struct {
	SourceCode     string `json:"source_code" example:"print('hi')"`
	SourceLanguage string `json:"source_language" example:"python"`
	TargetLanguage string `json:"target_language" example:"go"`
}

// CodeTranslationResponse represents translated code
type CodeTranslationResponse struct {
	TranslatedCode string `json:"translated_code" example:"fmt.Println(\"hi\")"`
	SourceLanguage string `json:"source_language" example:"python"`
	TargetLanguage string `json:"target_language" example:"go"`
	Model          string `json:"model" example:"codellama:7b"`
}

// LanguageEntry represents one supported language
type LanguageEntry struct {
	Value string `json:"value" example:"go"`
	Label string `json:"label" example:"Go"`
	Icon  string `json:"icon" example:"🐹"`
}

// LanguagesResponse represents the supported language catalog
type LanguagesResponse struct {
	Languages []LanguageEntry `json:"languages"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Code    string `json:"code" example:"VALIDATION_FAILED"`
	Message string `json:"message" example:"Request validation failed"`
}

// HealthResponse represents the health probe response
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Version string `json:"version,omitempty" example:"0.1.0"`
}

func NewSwagger() *swagno.Swagger {
	sw := swagno.New(swagno.Config{
		Title:       "GARLIC-Q API",
		Version:     "v1.0.0",
		Description: "Face-authenticated identity service with local code and chat generation",
		Host:        "localhost:8000",
		Path:        "/api/v1",
	})

	endpoints := []*endpoint.EndPoint{
		// POST /api/v1/users/signup - Enroll identity
		endpoint.New(
			endpoint.POST,
			"/users/signup",
			endpoint.WithTags("Authentication"),
			endpoint.WithSummary("Enroll a new identity from a face image"),
			endpoint.WithDescription("Extracts a face embedding from the uploaded image and creates a new identity. The population is capped at 50 identities."),
			endpoint.WithConsume([]mime.MIME{mime.MIME("multipart/form-data")}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(SignupResponse{}, "201", "Identity enrolled successfully"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "EXTRACTION_FAILED", Message: "No face detected in image"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "CAPACITY_REACHED", Message: "User limit reached"}, "403", "Forbidden"),
				response.New(ErrorResponse{Code: "INVALID_IMAGE", Message: "Invalid image"}, "422", "Unprocessable Entity"),
				response.New(ErrorResponse{Code: "PERSISTENCE_FAILURE", Message: "Failed to persist identity"}, "500", "Internal Server Error"),
				response.New(ErrorResponse{Code: "EXTRACTOR_UNAVAILABLE", Message: "Embedding service unavailable"}, "503", "Service Unavailable"),
			}),
		),

		// POST /api/v1/users/login - Authenticate identity
		endpoint.New(
			endpoint.POST,
			"/users/login",
			endpoint.WithTags("Authentication"),
			endpoint.WithSummary("Authenticate a face against the enrolled population"),
			endpoint.WithDescription("Compares the uploaded face against every enrolled identity and accepts when the best cosine similarity exceeds the threshold."),
			endpoint.WithConsume([]mime.MIME{mime.MIME("multipart/form-data")}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(LoginResponse{}, "200", "Login successful"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "EXTRACTION_FAILED", Message: "No face detected in image"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "BELOW_THRESHOLD", Message: "Best match below threshold"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "NOT_FOUND", Message: "No enrolled identities"}, "404", "Not Found"),
				response.New(ErrorResponse{Code: "EXTRACTOR_UNAVAILABLE", Message: "Embedding service unavailable"}, "503", "Service Unavailable"),
			}),
		),

		// POST /api/v1/code/generate - Generate code
		endpoint.New(
			endpoint.POST,
			"/code/generate",
			endpoint.WithTags("Code Generation"),
			endpoint.WithSummary("Generate code from a prompt"),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithBody(CodeGenerationRequest{}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(CodeGenerationResponse{}, "200", "Code generated successfully"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "BAD_REQUEST", Message: "Prompt is required"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "UNSUPPORTED_LANGUAGE", Message: "Unsupported language"}, "422", "Unprocessable Entity"),
				response.New(ErrorResponse{Code: "GENERATOR_UNAVAILABLE", Message: "Generation backend unavailable"}, "503", "Service Unavailable"),
			}),
		),

		// POST /api/v1/code/translate - Translate code
		endpoint.New(
			endpoint.POST,
			"/code/translate",
			endpoint.WithTags("Code Generation"),
			endpoint.WithSummary("Translate code between languages"),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithBody(CodeTranslationRequest{}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(CodeTranslationResponse{}, "200", "Code translated successfully"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "BAD_REQUEST", Message: "Source code is required"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "UNSUPPORTED_LANGUAGE", Message: "Unsupported language"}, "422", "Unprocessable Entity"),
				response.New(ErrorResponse{Code: "GENERATOR_UNAVAILABLE", Message: "Generation backend unavailable"}, "503", "Service Unavailable"),
			}),
		),

		// GET /api/v1/code/languages - Supported languages
		endpoint.New(
			endpoint.GET,
			"/code/languages",
			endpoint.WithTags("Code Generation"),
			endpoint.WithSummary("List supported programming languages"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(LanguagesResponse{}, "200", "Supported languages"),
			}),
		),

		// POST /api/v1/chat/generate - Chat
		endpoint.New(
			endpoint.POST,
			"/chat/generate",
			endpoint.WithTags("Chat"),
			endpoint.WithSummary("Generate a chat reply"),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithBody(ChatGenerationRequest{}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(ChatGenerationResponse{}, "200", "Reply generated successfully"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "BAD_REQUEST", Message: "Messages are required"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "GENERATOR_UNAVAILABLE", Message: "Generation backend unavailable"}, "503", "Service Unavailable"),
			}),
		),
	}

	sw.AddEndpoints(endpoints)

	return sw
}
