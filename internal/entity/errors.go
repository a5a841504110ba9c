package entity

import "errors"

// Domain errors for the user profile and related aggregates. None of these
// are fatal: every caller degrades to a safe default and keeps the session
// usable.
var (
	ErrCorruptState        = errors.New("persisted profile unreadable")
	ErrInsufficientFunds   = errors.New("insufficient coins")
	ErrItemNotFound        = errors.New("store item not found")
	ErrItemAlreadyOwned    = errors.New("store item already owned")
	ErrEmptyWord           = errors.New("word must not be empty")
	ErrSessionNotFound     = errors.New("quiz session not found")
	ErrSessionFinished     = errors.New("quiz session already finished")
	ErrNoDueWords          = errors.New("no words due for review")
	ErrProviderUnavailable = errors.New("content provider unavailable")
	ErrImageGeneration     = errors.New("image generation failed")
)
