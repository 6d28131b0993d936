package domain

import (
	"dynamic-voice/errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MaxChannelNameLen = 100
	MaxCustomNameLen  = 50

	defaultNamePrefix = "dynamic-channel-"
)

var validate = validator.New()

// NormalizeChannelName trims the name and checks it holds 1 to 100 characters.
func NormalizeChannelName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if err := validate.Var(name, fmt.Sprintf("min=1,max=%d", MaxChannelNameLen)); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidChannelName, err)
	}
	return name, nil
}

// NormalizeCustomName trims a preferred name. An empty result means "clear".
func NormalizeCustomName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if err := validate.Var(name, fmt.Sprintf("max=%d", MaxCustomNameLen)); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidCustomName, err)
	}
	return name, nil
}

// DefaultChannelName is the name given to a room whose owner has no preferred name.
func DefaultChannelName(owner Member) string {
	return truncate(defaultNamePrefix+owner.DisplayName, MaxChannelNameLen)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
