package service

import (
	"errors"

	"study-assistant-be/pkg/tutor/session"
)

var (
	ErrEmptyMessage    = errors.New("Message cannot be empty")
	ErrSessionNotFound = session.ErrSessionNotFound
)
