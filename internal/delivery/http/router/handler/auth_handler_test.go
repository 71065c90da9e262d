package handler

import (
	"testing"

	"kolotebe/internal/delivery/http/validator"

	"github.com/stretchr/testify/assert"
)

// Registration bounds: names need at least 2 characters and passwords at
// least 6. The limits are enforced through the struct tags, so the cases run
// through the same validator the server installs on Echo.
func TestRegisterRequestValidation(t *testing.T) {
	t.Parallel()

	requestValidator := validator.New()

	tests := []struct {
		name    string
		request registerRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			request: registerRequest{Name: "Al", Email: "al@example.com", Password: "secret"},
			wantErr: false,
		},
		{
			name:    "six character password passes",
			request: registerRequest{Name: "Olena", Email: "olena@example.com", Password: "123456"},
			wantErr: false,
		},
		{
			name:    "five character password fails",
			request: registerRequest{Name: "Olena", Email: "olena@example.com", Password: "12345"},
			wantErr: true,
		},
		{
			name:    "single character name fails",
			request: registerRequest{Name: "O", Email: "o@example.com", Password: "secret"},
			wantErr: true,
		},
		{
			name:    "missing email fails",
			request: registerRequest{Name: "Olena", Password: "secret"},
			wantErr: true,
		},
		{
			name:    "malformed email fails",
			request: registerRequest{Name: "Olena", Email: "not-an-email", Password: "secret"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := requestValidator.Validate(tt.request)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
