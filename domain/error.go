// Package domain defines error types for the catalog system.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidProductError is returned when product validation fails. It carries
// the validator's full message list.
type InvalidProductError struct {
	Errors []string
}

// Error implements the error interface for InvalidProductError
func (e *InvalidProductError) Error() string {
	return fmt.Sprintf("invalid product: %s", strings.Join(e.Errors, " "))
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidProductError) Is(target error) bool {
	_, ok := target.(*InvalidProductError)
	return ok
}

// SlugConflictError is returned when a product's slug is already taken by a
// base product, an existing custom product, or an earlier record in the
// same import batch.
type SlugConflictError struct {
	Slug string
}

// Error implements the error interface for SlugConflictError
func (e *SlugConflictError) Error() string {
	return fmt.Sprintf("Slug %q is already in use.", e.Slug)
}

// Is allows proper error type checking with errors.Is()
func (e *SlugConflictError) Is(target error) bool {
	_, ok := target.(*SlugConflictError)
	return ok
}

// IDConflictError is the id counterpart of SlugConflictError.
type IDConflictError struct {
	ID string
}

// Error implements the error interface for IDConflictError
func (e *IDConflictError) Error() string {
	return fmt.Sprintf("ID %q is already in use.", e.ID)
}

// Is allows proper error type checking with errors.Is()
func (e *IDConflictError) Is(target error) bool {
	_, ok := target.(*IDConflictError)
	return ok
}

// ParseError is returned when raw import input cannot be decoded at all
// (malformed JSON, empty CSV). It is fatal to the current import attempt.
type ParseError struct {
	Reason string
}

// Error implements the error interface for ParseError
func (e *ParseError) Error() string {
	return e.Reason
}

// Is allows proper error type checking with errors.Is()
func (e *ParseError) Is(target error) bool {
	_, ok := target.(*ParseError)
	return ok
}

// ProductNotFoundError is returned when a lookup by slug or id misses.
type ProductNotFoundError struct {
	Key string
}

// Error implements the error interface for ProductNotFoundError
func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found: %s", e.Key)
}

// Is allows proper error type checking with errors.Is()
func (e *ProductNotFoundError) Is(target error) bool {
	_, ok := target.(*ProductNotFoundError)
	return ok
}

// Helper functions for creating errors with context

// NewInvalidProductError creates a new InvalidProductError
func NewInvalidProductError(errs []string) error {
	return &InvalidProductError{Errors: errs}
}

// NewSlugConflictError creates a new SlugConflictError
func NewSlugConflictError(slug string) error {
	return &SlugConflictError{Slug: slug}
}

// NewIDConflictError creates a new IDConflictError
func NewIDConflictError(id string) error {
	return &IDConflictError{ID: id}
}

// NewParseError creates a new ParseError
func NewParseError(reason string) error {
	return &ParseError{Reason: reason}
}

// NewProductNotFoundError creates a new ProductNotFoundError
func NewProductNotFoundError(key string) error {
	return &ProductNotFoundError{Key: key}
}

// Type assertion helpers for use with errors.As()

// IsInvalidProductError checks if an error is an InvalidProductError
func IsInvalidProductError(err error) bool {
	var ipe *InvalidProductError
	return errors.As(err, &ipe)
}

// IsSlugConflictError checks if an error is a SlugConflictError
func IsSlugConflictError(err error) bool {
	var sce *SlugConflictError
	return errors.As(err, &sce)
}

// IsIDConflictError checks if an error is an IDConflictError
func IsIDConflictError(err error) bool {
	var ice *IDConflictError
	return errors.As(err, &ice)
}

// IsParseError checks if an error is a ParseError
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsProductNotFoundError checks if an error is a ProductNotFoundError
func IsProductNotFoundError(err error) bool {
	var pnf *ProductNotFoundError
	return errors.As(err, &pnf)
}
