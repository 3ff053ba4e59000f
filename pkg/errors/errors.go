package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeStore represents document store (MongoDB) errors
	ErrorTypeStore ErrorType = "store"
	// ErrorTypeGraph represents graph database (Neo4j) errors
	ErrorTypeGraph ErrorType = "graph"
	// ErrorTypeNotFound represents missing-entity errors
	ErrorTypeNotFound ErrorType = "not_found"
	// ErrorTypeValidation represents malformed client input (bad ids, bad payloads)
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeSeed represents seed pipeline errors
	ErrorTypeSeed ErrorType = "seed"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Not-found errors

// ErrNotFound is returned when an entity does not exist in the document store
type ErrNotFound struct {
	*BaseError
	Entity string
	ID     string
}

func NewNotFound(entity, id string) *ErrNotFound {
	return &ErrNotFound{
		BaseError: NewBaseError(ErrorTypeNotFound, fmt.Sprintf("%s not found: %s", entity, id), nil),
		Entity:    entity,
		ID:        id,
	}
}

// Validation errors

// ErrInvalidID is returned when an id does not parse as a Mongo ObjectID
type ErrInvalidID struct {
	*BaseError
	ID string
}

func NewInvalidID(id string) *ErrInvalidID {
	return &ErrInvalidID{
		BaseError: NewBaseError(ErrorTypeValidation, fmt.Sprintf("invalid id: %s", id), nil),
		ID:        id,
	}
}

// Store errors

// ErrStoreOperationFailed is returned when a MongoDB operation fails
type ErrStoreOperationFailed struct {
	*BaseError
	Collection string
	Operation  string
}

func NewStoreOperationFailed(collection, operation string, err error) *ErrStoreOperationFailed {
	return &ErrStoreOperationFailed{
		BaseError:  NewBaseError(ErrorTypeStore, fmt.Sprintf("%s failed on collection %s", operation, collection), err),
		Collection: collection,
		Operation:  operation,
	}
}

// ErrStoreConnectionFailed is returned when the MongoDB connection fails
type ErrStoreConnectionFailed struct {
	*BaseError
	URL string
}

func NewStoreConnectionFailed(url string, err error) *ErrStoreConnectionFailed {
	return &ErrStoreConnectionFailed{
		BaseError: NewBaseError(ErrorTypeStore, fmt.Sprintf("failed to connect to MongoDB: %s", url), err),
		URL:       url,
	}
}

// Graph errors

// ErrGraphConnectionFailed is returned when Neo4j connection fails
type ErrGraphConnectionFailed struct {
	*BaseError
	URI string
}

func NewGraphConnectionFailed(uri string, err error) *ErrGraphConnectionFailed {
	return &ErrGraphConnectionFailed{
		BaseError: NewBaseError(ErrorTypeGraph, fmt.Sprintf("failed to connect to Neo4j: %s", uri), err),
		URI:       uri,
	}
}

// ErrGraphQueryFailed is returned when a graph query fails
type ErrGraphQueryFailed struct {
	*BaseError
	Query string
}

func NewGraphQueryFailed(query string, err error) *ErrGraphQueryFailed {
	return &ErrGraphQueryFailed{
		BaseError: NewBaseError(ErrorTypeGraph, fmt.Sprintf("query failed: %s", query), err),
		Query:     query,
	}
}

// Seed errors

// ErrSeedDatasetFailed is returned when a dataset file cannot be loaded
type ErrSeedDatasetFailed struct {
	*BaseError
	Path string
}

func NewSeedDatasetFailed(path string, err error) *ErrSeedDatasetFailed {
	return &ErrSeedDatasetFailed{
		BaseError: NewBaseError(ErrorTypeSeed, fmt.Sprintf("failed to load dataset: %s", path), err),
		Path:      path,
	}
}

// Config errors

// ErrConfigMissingRequired is returned when a required config value is missing
type ErrConfigMissingRequired struct {
	*BaseError
	Field string
}

func NewConfigMissingRequired(field string) *ErrConfigMissingRequired {
	return &ErrConfigMissingRequired{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("missing required config: %s", field), nil),
		Field:     field,
	}
}

// Helper functions

// IsErrorType checks if an error is of a specific type
func IsErrorType(err error, errType ErrorType) bool {
	if baseErr, ok := err.(*BaseError); ok {
		return baseErr.Type == errType
	}
	if wrapped, ok := err.(interface{ Unwrap() error }); ok {
		if inner := wrapped.Unwrap(); inner != nil {
			return IsErrorType(inner, errType)
		}
	}
	return false
}

// IsNotFound checks if an error is a not-found error
func IsNotFound(err error) bool {
	if _, ok := err.(*ErrNotFound); ok {
		return true
	}
	return IsErrorType(err, ErrorTypeNotFound)
}

// IsInvalidID checks if an error is an invalid-id error
func IsInvalidID(err error) bool {
	if _, ok := err.(*ErrInvalidID); ok {
		return true
	}
	return IsErrorType(err, ErrorTypeValidation)
}
