package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/elifarslancelik/GARLIC-Q/internal/domain"
	"github.com/elifarslancelik/GARLIC-Q/internal/generation"
)

// MockGenerationService is a mock implementation of GenerationService
type MockGenerationService struct {
	mock.Mock
}

func (m *MockGenerationService) GenerateCode(ctx context.Context, prompt, language string, maxTokens int, temperature float64) (*generation.CodeResult, error) {
	args := m.Called(ctx, prompt, language, maxTokens, temperature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*generation.CodeResult), args.Error(1)
}

func (m *MockGenerationService) GenerateChat(ctx context.Context, messages []generation.Message, maxTokens int, temperature float64) (*generation.ChatResult, error) {
	args := m.Called(ctx, messages, maxTokens, temperature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*generation.ChatResult), args.Error(1)
}

func (m *MockGenerationService) TranslateCode(ctx context.Context, sourceCode, sourceLanguage, targetLanguage string) (*generation.TranslationResult, error) {
	args := m.Called(ctx, sourceCode, sourceLanguage, targetLanguage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*generation.TranslationResult), args.Error(1)
}

func (m *MockGenerationService) Languages() []generation.Language {
	args := m.Called()
	return args.Get(0).([]generation.Language)
}

func TestGenerateHandler_GenerateCode(t *testing.T) {
	tests := []struct {
		name           string
		payload        interface{}
		setupMock      func(*MockGenerationService)
		expectedStatus int
		checkResponse  func(t *testing.T, body []byte)
	}{
		{
			name:    "successful generation",
			payload: CodeGenerationRequest{Prompt: "fizzbuzz", Language: "go"},
			setupMock: func(m *MockGenerationService) {
				m.On("GenerateCode", mock.Anything, "fizzbuzz", "go", 512, 0.3).Return(&generation.CodeResult{
					Response:        "func FizzBuzz() {}",
					Language:        "go",
					TokensGenerated: 2,
					Model:           "codellama:7b",
				}, nil)
			},
			expectedStatus: 200,
			checkResponse: func(t *testing.T, body []byte) {
				var resp generation.CodeResult
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "go", resp.Language)
				assert.Equal(t, "codellama:7b", resp.Model)
			},
		},
		{
			name:    "unsupported language",
			payload: CodeGenerationRequest{Prompt: "fizzbuzz", Language: "cobol"},
			setupMock: func(m *MockGenerationService) {
				m.On("GenerateCode", mock.Anything, "fizzbuzz", "cobol", 512, 0.3).Return(nil, domain.ErrUnsupportedLanguage)
			},
			expectedStatus: 422,
		},
		{
			name:    "generator unavailable",
			payload: CodeGenerationRequest{Prompt: "fizzbuzz", Language: "go"},
			setupMock: func(m *MockGenerationService) {
				m.On("GenerateCode", mock.Anything, "fizzbuzz", "go", 512, 0.3).Return(nil, domain.ErrGeneratorUnavailable)
			},
			expectedStatus: 503,
		},
		{
			name:           "malformed body",
			payload:        "{not json",
			setupMock:      func(m *MockGenerationService) {},
			expectedStatus: 422,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockGenerationService{}
			tt.setupMock(mockService)

			handler := NewGenerateHandler(mockService, testLogger())
			app := createTestApp()
			app.Post("/api/v1/code/generate", handler.GenerateCode)

			var body []byte
			if str, ok := tt.payload.(string); ok {
				body = []byte(str)
			} else {
				body, _ = json.Marshal(tt.payload)
			}

			req := httptest.NewRequest("POST", "/api/v1/code/generate", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.checkResponse != nil {
				respBody, _ := io.ReadAll(resp.Body)
				tt.checkResponse(t, respBody)
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestGenerateHandler_TranslateCode(t *testing.T) {
	mockService := &MockGenerationService{}
	mockService.On("TranslateCode", mock.Anything, "print('hi')", "python", "go").Return(&generation.TranslationResult{
		TranslatedCode: `fmt.Println("hi")`,
		SourceLanguage: "python",
		TargetLanguage: "go",
		Model:          "codellama:7b",
	}, nil)

	handler := NewGenerateHandler(mockService, testLogger())
	app := createTestApp()
	app.Post("/api/v1/code/translate", handler.TranslateCode)

	body, _ := json.Marshal(CodeTranslationRequest{
		SourceCode:     "print('hi')",
		SourceLanguage: "python",
		TargetLanguage: "go",
	})

	req := httptest.NewRequest("POST", "/api/v1/code/translate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	respBody, _ := io.ReadAll(resp.Body)
	var result generation.TranslationResult
	require.NoError(t, json.Unmarshal(respBody, &result))
	assert.Equal(t, `fmt.Println("hi")`, result.TranslatedCode)

	mockService.AssertExpectations(t)
}

func TestGenerateHandler_Languages(t *testing.T) {
	mockService := &MockGenerationService{}
	mockService.On("Languages").Return([]generation.Language{
		{Value: "go", Label: "Go", Icon: "🐹"},
		{Value: "python", Label: "Python", Icon: "🐍"},
	})

	handler := NewGenerateHandler(mockService, testLogger())
	app := createTestApp()
	app.Get("/api/v1/code/languages", handler.Languages)

	req := httptest.NewRequest("GET", "/api/v1/code/languages", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	respBody, _ := io.ReadAll(resp.Body)
	var result LanguagesResponse
	require.NoError(t, json.Unmarshal(respBody, &result))
	assert.Len(t, result.Languages, 2)
}

func TestGenerateHandler_GenerateChat(t *testing.T) {
	messages := []generation.Message{{Role: "user", Content: "Hi"}}

	tests := []struct {
		name           string
		payload        interface{}
		setupMock      func(*MockGenerationService)
		expectedStatus int
	}{
		{
			name:    "successful chat",
			payload: ChatGenerationRequest{Messages: messages},
			setupMock: func(m *MockGenerationService) {
				m.On("GenerateChat", mock.Anything, messages, 500, 0.7).Return(&generation.ChatResult{
					Response:        "Hello!",
					TokensGenerated: 1,
					Model:           "codellama:7b",
				}, nil)
			},
			expectedStatus: 200,
		},
		{
			name:    "empty messages",
			payload: ChatGenerationRequest{},
			setupMock: func(m *MockGenerationService) {
				m.On("GenerateChat", mock.Anything, mock.Anything, 500, 0.7).Return(nil, domain.ErrBadRequest)
			},
			expectedStatus: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockGenerationService{}
			tt.setupMock(mockService)

			handler := NewGenerateHandler(mockService, testLogger())
			app := createTestApp()
			app.Post("/api/v1/chat/generate", handler.GenerateChat)

			body, _ := json.Marshal(tt.payload)
			req := httptest.NewRequest("POST", "/api/v1/chat/generate", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			mockService.AssertExpectations(t)
		})
	}
}
