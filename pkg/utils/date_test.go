package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionalDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *time.Time
	}{
		{
			name:  "Data válida",
			input: "2024-03-15",
			expected: func() *time.Time {
				d := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
				return &d
			}(),
		},
		{
			name:     "Data vazia vira filtro ausente",
			input:    "",
			expected: nil,
		},
		{
			name:     "Data malformada vira filtro ausente",
			input:    "15/03/2024",
			expected: nil,
		},
		{
			name:     "Dia inexistente vira filtro ausente",
			input:    "2024-02-31",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseOptionalDate(tt.input))
		})
	}
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()

	require.NoError(t, err)
	assert.Len(t, id, 6)
}
