package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"valid simple", "alice", false},
		{"valid with digits", "alice42", false},
		{"valid with separators", "alice_b-c", false},
		{"minimum length", "ab", false},
		{"too short", "a", true},
		{"too long", strings.Repeat("a", 21), true},
		{"illegal characters", "alice!", true},
		{"space", "ali ce", true},
		{"leading underscore", "_alice", true},
		{"trailing hyphen", "alice-", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid", "alice@example.com", false},
		{"valid subdomain", "alice@mail.example.co.uk", false},
		{"empty", "", true},
		{"no at sign", "alice.example.com", true},
		{"no domain dot", "alice@example", true},
		{"spaces", "ali ce@example.com", true},
		{"too long", strings.Repeat("a", 115) + "@ex.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("secret1"))
	assert.NoError(t, ValidatePassword("abcdef"))
	assert.Error(t, ValidatePassword("abcde"))
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword(strings.Repeat("a", 129)))
}

func TestValidateBio(t *testing.T) {
	assert.NoError(t, ValidateBio(""))
	assert.NoError(t, ValidateBio(strings.Repeat("a", 500)))
	assert.Error(t, ValidateBio(strings.Repeat("a", 501)))
}
