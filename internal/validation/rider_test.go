package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDeviceID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		errMsg  string
		wantErr bool
	}{
		{
			name: "valid - hex digest",
			id:   "9f86d081884c7d659a2feaa0c55ad015",
		},
		{
			name: "valid - uuid",
			id:   "123e4567-e89b-12d3-a456-426614174000",
		},
		{
			name: "valid - max length",
			id:   strings.Repeat("a", 64),
		},
		{
			name:    "invalid - empty",
			id:      "",
			wantErr: true,
			errMsg:  "device id cannot be empty",
		},
		{
			name:    "invalid - too long",
			id:      strings.Repeat("a", 65),
			wantErr: true,
			errMsg:  "max 64",
		},
		{
			name:    "invalid - space",
			id:      "device 1",
			wantErr: true,
			errMsg:  "can only contain",
		},
		{
			name:    "invalid - path traversal",
			id:      "../etc",
			wantErr: true,
			errMsg:  "can only contain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDeviceID(tt.id)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		errMsg  string
		wantErr bool
	}{
		{
			name:  "valid - empty",
			input: "",
		},
		{
			name:  "valid - latin",
			input: "anna",
		},
		{
			name:  "valid - cyrillic with space",
			input: "Анна К.",
		},
		{
			name:  "valid - max length in runes",
			input: strings.Repeat("ж", MaxNameLen),
		},
		{
			name:    "invalid - too long",
			input:   strings.Repeat("ж", MaxNameLen+1),
			wantErr: true,
			errMsg:  "must not exceed",
		},
		{
			name:    "invalid - leading whitespace",
			input:   " anna",
			wantErr: true,
			errMsg:  "whitespace",
		},
		{
			name:    "invalid - control character",
			input:   "an\x00na",
			wantErr: true,
			errMsg:  "non-printable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateColor(t *testing.T) {
	valid := []string{"", "#fff", "#FF8800", "#a1b2c3"}
	for _, color := range valid {
		assert.NoError(t, ValidateColor(color), color)
	}

	invalid := []string{"red", "ff8800", "#ff88", "#gggggg", "#ff8800aa"}
	for _, color := range invalid {
		err := ValidateColor(color)
		require.Error(t, err, color)
		assert.Contains(t, err.Error(), "hex value")
	}
}
