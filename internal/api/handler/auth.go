package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/elifarslancelik/GARLIC-Q/internal/domain"
)

const (
	maxImageSize = 10 * 1024 * 1024 // 10MB
)

var validImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Enroller creates identities from face images
type Enroller interface {
	Enroll(ctx context.Context, imageBytes []byte) (uuid.UUID, error)
}

// Authenticator matches a face image against the enrolled population
type Authenticator interface {
	Authenticate(ctx context.Context, imageBytes []byte) (*domain.AuthDecision, error)
}

// AuthHandler handles face signup and login requests
type AuthHandler struct {
	enroller      Enroller
	authenticator Authenticator
	logger        *slog.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(enroller Enroller, authenticator Authenticator, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		enroller:      enroller,
		authenticator: authenticator,
		logger:        logger,
	}
}

// SignupResponse response for signup endpoint
type SignupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// LoginResponse response for a successful login
type LoginResponse struct {
	Message    string  `json:"message"`
	UserID     string  `json:"user_id"`
	Similarity float64 `json:"similarity"`
}

// Signup POST /api/v1/users/signup - enroll a new identity from a face image
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	imageBytes, err := extractAndValidateImage(c)
	if err != nil {
		return fmt.Errorf("signup: %w", err)
	}

	id, err := h.enroller.Enroll(c.Context(), imageBytes)
	if err != nil {
		return err
	}

	h.logger.Info("identity enrolled", slog.String("user_id", id.String()))

	return c.Status(fiber.StatusCreated).JSON(SignupResponse{
		Message: "User created successfully",
		UserID:  id.String(),
	})
}

// Login POST /api/v1/users/login - authenticate a face against the population.
// A below-threshold match is a 401 that reports the best score but never the
// near-match identity.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	imageBytes, err := extractAndValidateImage(c)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	decision, err := h.authenticator.Authenticate(c.Context(), imageBytes)
	if err != nil {
		return err
	}

	if !decision.Accepted {
		h.logger.Warn("login rejected",
			slog.Float64("best_similarity", decision.Similarity),
		)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": fiber.Map{
				"code":            domain.ErrBelowThreshold.Code,
				"message":         domain.ErrBelowThreshold.Message,
				"best_similarity": decision.Similarity,
			},
		})
	}

	h.logger.Info("login successful",
		slog.String("user_id", decision.IdentityID.String()),
		slog.Float64("similarity", decision.Similarity),
	)

	return c.JSON(LoginResponse{
		Message:    "Login successful",
		UserID:     decision.IdentityID.String(),
		Similarity: decision.Similarity,
	})
}

// extractAndValidateImage extracts and validates the image from the form
func extractAndValidateImage(c *fiber.Ctx) ([]byte, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return nil, domain.ErrValidationFailed.WithError(err)
	}

	if file.Size > maxImageSize || file.Size == 0 {
		return nil, domain.ErrInvalidImage.WithError(nil)
	}

	contentType := file.Header.Get("Content-Type")
	if !validImageTypes[contentType] {
		return nil, domain.ErrInvalidImage.WithError(nil)
	}

	f, err := file.Open()
	if err != nil {
		return nil, domain.ErrInvalidImage.WithError(err)
	}
	defer func() {
		_ = f.Close()
	}()

	imageBytes, err := io.ReadAll(f)
	if err != nil {
		return nil, domain.ErrInvalidImage.WithError(err)
	}

	return imageBytes, nil
}
