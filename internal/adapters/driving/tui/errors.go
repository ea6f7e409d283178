package tui

import "errors"

// ErrMissingReviewService is returned when the review service is not provided.
var ErrMissingReviewService = errors.New("tui: review service is required")

// ErrMissingCoverService is returned when the cover service is not provided.
var ErrMissingCoverService = errors.New("tui: cover service is required")

// ErrMissingCaptionService is returned when the caption service is not provided.
var ErrMissingCaptionService = errors.New("tui: caption service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
