package errors

import "errors"

// This package defines the sentinel errors shared by every layer of the backend.
// Services wrap them with context (`fmt.Errorf("%w: ...", ErrX)`) and the API layer
// maps them to HTTP status codes with `errors.Is()`, so no service ever has to know
// about HTTP.

var (
	// ErrNotFound signifies that a requested resource could not be located.
	// This is typically mapped to a 404 Not Found HTTP status.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that the client sent a malformed request: a file
	// without the .pdf extension, an empty message list, no user message.
	// This is mapped to a 400 Bad Request HTTP status.
	ErrValidation = errors.New("validation failed")

	// ErrStorage signifies that an uploaded file or its registry record could
	// not be persisted.
	ErrStorage = errors.New("error saving file")

	// ErrExtraction signifies that a stored PDF could not be decoded into text.
	ErrExtraction = errors.New("error extracting text")

	// ErrProcessing signifies a failure anywhere in the ingestion pipeline:
	// extraction, chunking, embedding or index insertion.
	ErrProcessing = errors.New("error processing document")

	// ErrGeneration signifies a failure to load a model, retrieve context or
	// produce an answer.
	ErrGeneration = errors.New("error generating response")

	// ErrTooLarge signifies that an upload exceeded the configured size limit.
	// This is mapped to a 413 Request Entity Too Large HTTP status.
	ErrTooLarge = errors.New("upload too large")

	// ErrBusy signifies that every worker slot is taken.
	// This is mapped to a 503 Service Unavailable HTTP status.
	ErrBusy = errors.New("server is busy, try again later")

	// ErrInternal signifies an unexpected error on the server. It is used to
	// avoid leaking implementation details to the client.
	ErrInternal = errors.New("internal server error")
)
