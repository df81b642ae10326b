package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/elifarslancelik/GARLIC-Q/internal/domain"
)

// supportedLanguages is the set of languages the code endpoints accept
var supportedLanguages = map[string]bool{
	"python": true, "javascript": true, "java": true, "cpp": true,
	"html": true, "css": true, "go": true, "rust": true,
	"php": true, "ruby": true, "swift": true, "kotlin": true,
	"typescript": true, "csharp": true,
}

// languageCatalog mirrors the picker the frontend renders
var languageCatalog = []Language{
	{Value: "python", Label: "Python", Icon: "🐍"},
	{Value: "javascript", Label: "JavaScript", Icon: "🟨"},
	{Value: "java", Label: "Java", Icon: "☕"},
	{Value: "cpp", Label: "C++", Icon: "⚡"},
	{Value: "html", Label: "HTML", Icon: "🌐"},
	{Value: "css", Label: "CSS", Icon: "🎨"},
	{Value: "go", Label: "Go", Icon: "🐹"},
	{Value: "rust", Label: "Rust", Icon: "🦀"},
	{Value: "php", Label: "PHP", Icon: "🐘"},
	{Value: "ruby", Label: "Ruby", Icon: "💎"},
	{Value: "swift", Label: "Swift", Icon: "🍎"},
	{Value: "kotlin", Label: "Kotlin", Icon: "🔷"},
	{Value: "typescript", Label: "TypeScript", Icon: "🔵"},
	{Value: "csharp", Label: "C#", Icon: "💜"},
}

// Generator is the completion backend consumed by the service
type Generator interface {
	Generate(ctx context.Context, prompt, system string, maxTokens int, temperature float64) (*generateResponse, error)
	Model() string
}

// Service exposes the code and chat generation operations backed by a
// local Ollama model.
type Service struct {
	client Generator
}

// NewService creates a generation service on top of an Ollama client
func NewService(client Generator) *Service {
	return &Service{client: client}
}

// Languages returns the catalog of supported programming languages
func (s *Service) Languages() []Language {
	return languageCatalog
}

// IsSupportedLanguage reports whether the code endpoints accept the language
func IsSupportedLanguage(language string) bool {
	return supportedLanguages[language]
}

// GenerateCode produces code in the requested language from a prompt
func (s *Service) GenerateCode(ctx context.Context, prompt, language string, maxTokens int, temperature float64) (*CodeResult, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, domain.ErrBadRequest.WithError(errors.New("prompt is required"))
	}
	if !IsSupportedLanguage(language) {
		return nil, domain.ErrUnsupportedLanguage
	}
	if maxTokens <= 0 {
		maxTokens = 512
	}

	system := fmt.Sprintf("You are a helpful coding assistant. Generate code in %s language. Only provide the code without explanations.", language)

	resp, err := s.client.Generate(ctx, prompt, system, maxTokens, temperature)
	if err != nil {
		return nil, mapGenerateError(err)
	}

	return &CodeResult{
		Response:        resp.Response,
		Language:        language,
		TokensGenerated: len(strings.Fields(resp.Response)),
		Model:           s.client.Model(),
	}, nil
}

// GenerateChat produces a conversational reply from a message history.
// The model has a plain completion API, so the history is flattened into a
// single prompt with the last system message lifted out.
func (s *Service) GenerateChat(ctx context.Context, messages []Message, maxTokens int, temperature float64) (*ChatResult, error) {
	if len(messages) == 0 {
		return nil, domain.ErrBadRequest.WithError(errors.New("messages are required"))
	}
	if maxTokens <= 0 {
		maxTokens = 500
	}

	var system string
	var prompt strings.Builder
	for _, m := range messages {
		switch m.Role {
		case "system":
			system = m.Content
		case "assistant":
			prompt.WriteString("Assistant: ")
			prompt.WriteString(m.Content)
			prompt.WriteString("\n")
		default:
			prompt.WriteString("User: ")
			prompt.WriteString(m.Content)
			prompt.WriteString("\n")
		}
	}
	prompt.WriteString("Assistant: ")

	resp, err := s.client.Generate(ctx, prompt.String(), system, maxTokens, temperature)
	if err != nil {
		return nil, mapGenerateError(err)
	}

	return &ChatResult{
		Response:        resp.Response,
		TokensGenerated: len(strings.Fields(resp.Response)),
		Model:           s.client.Model(),
	}, nil
}

// TranslateCode rewrites source code from one language into another
func (s *Service) TranslateCode(ctx context.Context, sourceCode, sourceLanguage, targetLanguage string) (*TranslationResult, error) {
	if strings.TrimSpace(sourceCode) == "" {
		return nil, domain.ErrBadRequest.WithError(errors.New("source code is required"))
	}
	if !IsSupportedLanguage(sourceLanguage) || !IsSupportedLanguage(targetLanguage) {
		return nil, domain.ErrUnsupportedLanguage
	}

	prompt := fmt.Sprintf("Translate the following %s code to %s:\n\n%s\n\nPlease provide only the translated code without any explanations or comments.",
		sourceLanguage, targetLanguage, sourceCode)
	system := fmt.Sprintf("You are a helpful coding assistant. Generate code in %s language. Only provide the code without explanations.", targetLanguage)

	resp, err := s.client.Generate(ctx, prompt, system, 1024, 0.2)
	if err != nil {
		return nil, mapGenerateError(err)
	}

	return &TranslationResult{
		TranslatedCode: resp.Response,
		SourceLanguage: sourceLanguage,
		TargetLanguage: targetLanguage,
		Model:          s.client.Model(),
	}, nil
}

func mapGenerateError(err error) error {
	if errors.Is(err, ErrOllamaUnavailable) {
		return domain.ErrGeneratorUnavailable.WithError(err)
	}
	return domain.ErrInternal.WithError(err)
}
