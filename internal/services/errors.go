// Package services defines the business logic for questions and answers.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the
// handler layer.
package services

import "errors"

var (
	// ErrEmptyTitle is returned when a question is created without a title.
	ErrEmptyTitle = errors.New("title is empty")

	// ErrEmptyDescription is returned when a question is created without a
	// description.
	ErrEmptyDescription = errors.New("description is empty")

	// ErrEmptyContent is returned when an answer is created without content.
	ErrEmptyContent = errors.New("content is empty")
)
