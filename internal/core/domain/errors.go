package domain

import "errors"

// Domain errors - used across all layers
var (
	// ErrNotFound indicates the requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates authentication failed or missing
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the caller lacks permission for this action
	ErrForbidden = errors.New("forbidden")

	// ErrTokenExpired indicates the auth token has expired
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid indicates the auth token is malformed or invalid
	ErrTokenInvalid = errors.New("token invalid")

	// ErrInvalidCredentials indicates a wrong admin password
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrServiceUnavailable indicates a remote dependency could not be reached
	ErrServiceUnavailable = errors.New("service unavailable")
)

// Pipeline errors - the failure taxonomy of the ingestion and answer pipelines
var (
	// ErrExtraction indicates no text could be recovered from an upload.
	// Terminal for the ingestion request; the raw object stays stored.
	ErrExtraction = errors.New("no text could be extracted")

	// ErrSummarization indicates the model reply could not be parsed into
	// the expected summary shape. Terminal for the ingestion request.
	ErrSummarization = errors.New("summary output not parseable")

	// ErrRetrieval indicates the embedding or vector-store call failed
	// during answering. Recoverable: the pipeline degrades to an
	// ungrounded answer instead of failing the request.
	ErrRetrieval = errors.New("retrieval failed")

	// ErrGeneration indicates the final answer call failed. Terminal for
	// the request; surfaced verbatim, never retried.
	ErrGeneration = errors.New("generation failed")

	// ErrStorage indicates an object or relational write failed.
	// On the indexing step of ingestion it is surfaced but does not roll
	// back the steps that already completed.
	ErrStorage = errors.New("storage failed")

	// ErrDimensionMismatch indicates a vector whose dimensionality does
	// not match the store's configured embedding model. Mixing dimensions
	// corrupts ranking, so mismatched inserts and queries are rejected.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)
