package generation

import "errors"

var (
	// ErrOllamaUnavailable indicates the Ollama server is unreachable or
	// returned a server error
	ErrOllamaUnavailable = errors.New("ollama server is unavailable")

	// ErrInvalidResponse indicates the server returned a malformed response
	ErrInvalidResponse = errors.New("invalid response from ollama server")
)
