package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTime(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"09:00", true},
		{"14:30", true},
		{"23:59", true},
		{"00:00", true},
		{"24:00", false},
		{"14:60", false},
		{"9:00", false},
		{"14h00", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidateTime(tt.value), "valor: %q", tt.value)
	}
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"2025-11-24", true},
		{"2025-01-01", true},
		{"24/11/2025", false},
		{"2025-11", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidateDate(tt.value), "valor: %q", tt.value)
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"11999999999", "+5511999999999"},
		{"(11) 99999-9999", "+5511999999999"},
		{"+5511999999999", "+5511999999999"},
		{"5511999999999", "+5511999999999"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPhone(tt.value), "valor: %q", tt.value)
	}
}

func TestFormatName(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"maria silva", "Maria Silva"},
		{"JOANA", "Joana"},
		{"ana-clara souza", "Ana-Clara Souza"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatName(tt.value), "valor: %q", tt.value)
	}
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("11999999999"))
	assert.True(t, ValidatePhone("(11) 99999-9999"))
	assert.False(t, ValidatePhone("123"))
	assert.False(t, ValidatePhone("abc"))
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("maria@example.com"))
	assert.False(t, ValidateEmail("maria@"))
	assert.False(t, ValidateEmail("maria"))
}
