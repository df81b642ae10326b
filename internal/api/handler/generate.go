package handler

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/elifarslancelik/GARLIC-Q/internal/domain"
	"github.com/elifarslancelik/GARLIC-Q/internal/generation"
)

// GenerationService is the code and chat backend
type GenerationService interface {
	GenerateCode(ctx context.Context, prompt, language string, maxTokens int, temperature float64) (*generation.CodeResult, error)
	GenerateChat(ctx context.Context, messages []generation.Message, maxTokens int, temperature float64) (*generation.ChatResult, error)
	TranslateCode(ctx context.Context, sourceCode, sourceLanguage, targetLanguage string) (*generation.TranslationResult, error)
	Languages() []generation.Language
}

// GenerateHandler handles code and chat generation requests
type GenerateHandler struct {
	service GenerationService
	logger  *slog.Logger
}

// NewGenerateHandler creates a new GenerateHandler instance
func NewGenerateHandler(service GenerationService, logger *slog.Logger) *GenerateHandler {
	return &GenerateHandler{
		service: service,
		logger:  logger,
	}
}

// CodeGenerationRequest request body for code generation
type CodeGenerationRequest struct {
	Prompt      string  `json:"prompt"`
	Language    string  `json:"language"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

// ChatGenerationRequest request body for chat generation
type ChatGenerationRequest struct {
	Messages    []generation.Message `json:"messages"`
	MaxTokens   int                  `json:"max_tokens"`
	Temperature float64              `json:"temperature"`
}

// CodeTranslationRequest request body for code translation
type CodeTranslationRequest struct {
	SourceCode     string `json:"source_code"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

// LanguagesResponse response for the languages endpoint
type LanguagesResponse struct {
	Languages []generation.Language `json:"languages"`
}

// GenerateCode POST /api/v1/code/generate
func (h *GenerateHandler) GenerateCode(c *fiber.Ctx) error {
	var req CodeGenerationRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrValidationFailed.WithError(err)
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = 512
	}
	if req.Temperature == 0 {
		req.Temperature = 0.3
	}

	result, err := h.service.GenerateCode(c.Context(), req.Prompt, req.Language, req.MaxTokens, req.Temperature)
	if err != nil {
		return err
	}

	h.logger.Info("code generated", slog.String("language", req.Language))

	return c.JSON(result)
}

// TranslateCode POST /api/v1/code/translate
func (h *GenerateHandler) TranslateCode(c *fiber.Ctx) error {
	var req CodeTranslationRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrValidationFailed.WithError(err)
	}

	result, err := h.service.TranslateCode(c.Context(), req.SourceCode, req.SourceLanguage, req.TargetLanguage)
	if err != nil {
		return err
	}

	h.logger.Info("code translated",
		slog.String("source_language", req.SourceLanguage),
		slog.String("target_language", req.TargetLanguage),
	)

	return c.JSON(result)
}

// Languages GET /api/v1/code/languages
func (h *GenerateHandler) Languages(c *fiber.Ctx) error {
	return c.JSON(LanguagesResponse{
		Languages: h.service.Languages(),
	})
}

// GenerateChat POST /api/v1/chat/generate
func (h *GenerateHandler) GenerateChat(c *fiber.Ctx) error {
	var req ChatGenerationRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrValidationFailed.WithError(err)
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = 500
	}
	if req.Temperature == 0 {
		req.Temperature = 0.7
	}

	result, err := h.service.GenerateChat(c.Context(), req.Messages, req.MaxTokens, req.Temperature)
	if err != nil {
		return err
	}

	return c.JSON(result)
}
