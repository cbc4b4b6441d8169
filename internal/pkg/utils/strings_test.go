//go:build unit
// +build unit

package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Friday Night 5v5", "friday-night-5v5"},
		{"  --Hello,   World!-- ", "hello-world"},
		{"Café Über", "cafe-uber"},
		{"Футбол", "futbol"},
		{"Ballers & Co", "ballers-and-co"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestConvertToInt(t *testing.T) {
	assert.Equal(t, 25, ConvertToInt("25"))
	assert.Equal(t, 7, ConvertToInt(" 7 "))
	assert.Equal(t, 0, ConvertToInt("ten"))
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("é", 200)
	assert.Len(t, []rune(Truncate(long, 140)), 140)
	assert.Equal(t, "short", Truncate("short", 140))
}
