package facenet

import "errors"

var (
	// ErrFaceNetUnavailable indicates the sidecar could not be reached or
	// kept failing after retries
	ErrFaceNetUnavailable = errors.New("facenet sidecar unavailable")

	// ErrInvalidResponse indicates the sidecar returned a body that could
	// not be decoded
	ErrInvalidResponse = errors.New("invalid facenet response")
)
