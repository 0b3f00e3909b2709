package convert

import (
	"testing"

	"color-api/core/color"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_Convert(t *testing.T) {
	svc := NewService(zap.NewNop())

	tests := []struct {
		name  string
		input string
		want  Result
	}{
		{"Long form", "FF5733", Result{Hex: "#FF5733", RGB: color.RGB{R: 255, G: 87, B: 51}, CSS: "rgb(255, 87, 51)"}},
		{"Prefixed", "#FFFFFF", Result{Hex: "#FFFFFF", RGB: color.RGB{R: 255, G: 255, B: 255}, CSS: "rgb(255, 255, 255)"}},
		{"Shorthand", "F0F", Result{Hex: "#F0F", RGB: color.RGB{R: 255, G: 0, B: 255}, CSS: "rgb(255, 0, 255)"}},
		{"Lowercase", "00ff00", Result{Hex: "#00ff00", RGB: color.RGB{R: 0, G: 255, B: 0}, CSS: "rgb(0, 255, 0)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Convert(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestService_ConvertErrors(t *testing.T) {
	svc := NewService(zap.NewNop())

	_, err := svc.Convert("")
	assert.ErrorIs(t, err, ErrMissingHex)

	for _, input := range []string{"GGGGGG", "FF", "#", "##FFFFFF", "INVALID"} {
		res, err := svc.Convert(input)
		assert.ErrorIs(t, err, color.ErrInvalidHex, input)
		assert.NotErrorIs(t, err, ErrMissingHex, input)
		assert.Nil(t, res)
	}
}

func TestService_HexStableAcrossPrefix(t *testing.T) {
	svc := NewService(zap.NewNop())

	bare, err := svc.Convert("ABC123")
	require.NoError(t, err)
	prefixed, err := svc.Convert("#ABC123")
	require.NoError(t, err)

	assert.Equal(t, bare, prefixed)
}
