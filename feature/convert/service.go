package convert

import (
	"errors"

	"color-api/core/color"

	"go.uber.org/zap"
)

// ErrMissingHex is returned when no candidate was supplied.
var ErrMissingHex = errors.New("missing hex parameter")

// Result is a successful conversion.
type Result struct {
	// Hex is the candidate with a leading '#' guaranteed.
	Hex string `json:"hex" example:"#FF5733"`
	// RGB holds the decoded channels.
	RGB color.RGB `json:"rgb"`
	// CSS is the rgb() rendering of the color.
	CSS string `json:"css" example:"rgb(255, 87, 51)"`
}

// Service converts color candidates.
type Service struct {
	logger *zap.Logger
}

// NewService creates a new conversion service.
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// Convert validates and decodes a candidate.
// It returns ErrMissingHex for an empty candidate and color.ErrInvalidHex for a malformed one.
func (s *Service) Convert(candidate string) (*Result, error) {
	if candidate == "" {
		return nil, ErrMissingHex
	}

	rgb, err := color.ParseHex(candidate)
	if err != nil {
		return nil, err
	}

	return &Result{
		Hex: color.NormalizeHex(candidate),
		RGB: rgb,
		CSS: rgb.CSS(),
	}, nil
}
