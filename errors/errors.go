package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")
	ErrEmptyWords  = fmt.Errorf("no words have been found")

	ErrNotOwner           = fmt.Errorf("only the channel owner can do this")
	ErrPermissionDenied   = fmt.Errorf("permission denied")
	ErrInvalidChannelName = fmt.Errorf("channel name must be between 1 and 100 characters")
	ErrInvalidCustomName  = fmt.Errorf("default channel name cannot exceed 50 characters")
	ErrRoomDestroyed      = fmt.Errorf("room has been destroyed")

	ErrChannelNotFound  = fmt.Errorf("channel not found")
	ErrNotVoiceChannel  = fmt.Errorf("channel is not a voice channel")
	ErrUnknownStore     = fmt.Errorf("unknown store driver")
	ErrGuildUnavailable = fmt.Errorf("guild not available")
)

// Is and As let callers match sentinels without importing both error packages.
func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

// IsNotFound reports whether the channel is gone from the platform.
func IsNotFound(err error) bool { return stderrors.Is(err, ErrChannelNotFound) }
