package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid password",
			password: "correct-horse-battery",
			wantErr:  false,
		},
		{
			name:     "valid password - exactly min length",
			password: "12345678",
			wantErr:  false,
		},
		{
			name:     "invalid - empty",
			password: "",
			wantErr:  true,
			errMsg:   "password cannot be empty",
		},
		{
			name:     "invalid - too short",
			password: "short1",
			wantErr:  true,
			errMsg:   "at least 8 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateAccountName(t *testing.T) {
	require.NoError(t, ValidateAccountName("Checking"))
	require.NoError(t, ValidateAccountName("Joint savings (2024)"))

	err := ValidateAccountName("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be empty")

	err = ValidateAccountName(strings.Repeat("x", MaxAccountNameLen+1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not exceed")
}

func TestValidatePrefKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "valid - dotted key", key: "budget.currency", wantErr: false},
		{name: "valid - dashed key", key: "simplefin-access-url", wantErr: false},
		{name: "valid - single char", key: "x", wantErr: false},
		{name: "invalid - empty", key: "", wantErr: true},
		{name: "invalid - spaces", key: "budget currency", wantErr: true},
		{name: "invalid - too long", key: strings.Repeat("k", 65), wantErr: true},
		{name: "invalid - unicode", key: "валюта", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePrefKey(tt.key)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
