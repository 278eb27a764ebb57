package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func validRegisterPayload() map[string]any {
	return map[string]any{
		"fullname": "Jane Doe Smith",
		"email":    "jane@example.com",
		"password": "abcdef",
	}
}

func TestValidateRegister(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p map[string]any)
		wantErr string
	}{
		{
			name:   "valid payload",
			mutate: func(p map[string]any) {},
		},
		{
			name:    "missing fullname",
			mutate:  func(p map[string]any) { delete(p, "fullname") },
			wantErr: "Fullname is required.",
		},
		{
			name:    "fullname too short",
			mutate:  func(p map[string]any) { p["fullname"] = "Jane" },
			wantErr: "Fullname must be between 10 and 200 characters long.",
		},
		{
			name:    "fullname with digits",
			mutate:  func(p map[string]any) { p["fullname"] = "Jane Doe Smith 3" },
			wantErr: "Fullname must contain only letters and spaces.",
		},
		{
			name:   "non-ascii fullname of valid length",
			mutate: func(p map[string]any) { p["fullname"] = "José María Ñuñez" },
		},
		{
			// 5 letters spanning 10 bytes; character count is what matters.
			name:    "short non-ascii fullname",
			mutate:  func(p map[string]any) { p["fullname"] = strings.Repeat("Ñ", 5) },
			wantErr: "Fullname must be between 10 and 200 characters long.",
		},
		{
			// 150 CJK letters span 450 bytes but sit well under 200 characters.
			name:   "long cjk fullname within limit",
			mutate: func(p map[string]any) { p["fullname"] = strings.Repeat("愛", 150) },
		},
		{
			name:    "fullname over two hundred characters",
			mutate:  func(p map[string]any) { p["fullname"] = strings.Repeat("愛", 201) },
			wantErr: "Fullname must be between 10 and 200 characters long.",
		},
		{
			name:    "missing email",
			mutate:  func(p map[string]any) { delete(p, "email") },
			wantErr: "Email is required.",
		},
		{
			name:    "malformed email",
			mutate:  func(p map[string]any) { p["email"] = "not-an-email" },
			wantErr: "Email is not a valid email address.",
		},
		{
			name:    "email too short",
			mutate:  func(p map[string]any) { p["email"] = "a@b.co" },
			wantErr: "Email must be between 10 and 200 characters long.",
		},
		{
			name:    "missing password",
			mutate:  func(p map[string]any) { delete(p, "password") },
			wantErr: "Password is required.",
		},
		{
			name:    "password too short",
			mutate:  func(p map[string]any) { p["password"] = "abc" },
			wantErr: "Password must be at least 6 to 32 characters long.",
		},
		{
			name:    "password too long",
			mutate:  func(p map[string]any) { p["password"] = "abcdefghijabcdefghijabcdefghijabc" },
			wantErr: "Password must be at least 6 to 32 characters long.",
		},
		{
			name:    "password without lowercase",
			mutate:  func(p map[string]any) { p["password"] = "ABCDEF" },
			wantErr: "Password must contain at least one lowercase letter.",
		},
		{
			name:    "password with whitespace",
			mutate:  func(p map[string]any) { p["password"] = "abc def" },
			wantErr: "Password must not contain spaces.",
		},
		{
			name:    "non-string fullname",
			mutate:  func(p map[string]any) { p["fullname"] = 42 },
			wantErr: "Fullname must be a string.",
		},
		{
			name: "first failing field wins",
			mutate: func(p map[string]any) {
				p["fullname"] = "Jane"
				p["password"] = "abc"
			},
			wantErr: "Fullname must be between 10 and 200 characters long.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validRegisterPayload()
			tt.mutate(payload)

			err := ValidateRegister(payload)
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	err := ValidateLogin(map[string]any{
		"email":    "jane@example.com",
		"password": "abcdef",
	})
	require.NoError(t, err)

	err = ValidateLogin(map[string]any{"password": "abcdef"})
	require.EqualError(t, err, "Email is required.")

	err = ValidateLogin(map[string]any{"email": "jane@example.com"})
	require.EqualError(t, err, "Password is required.")
}

func TestValidateCreateContact(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		wantErr string
	}{
		{
			name: "valid payload",
			payload: map[string]any{
				"fullname":     "Bob The Builder",
				"phone_number": "0812345678",
			},
		},
		{
			name:    "missing fullname",
			payload: map[string]any{"phone_number": "0812345678"},
			wantErr: "Fullname is required.",
		},
		{
			name:    "missing phone",
			payload: map[string]any{"fullname": "Bob The Builder"},
			wantErr: "Phone number is required.",
		},
		{
			name: "phone not starting with zero",
			payload: map[string]any{
				"fullname":     "Bob The Builder",
				"phone_number": "8123456789",
			},
			wantErr: "Phone number must start with zero, contain only numbers, and have no spaces.",
		},
		{
			name: "phone with letters",
			payload: map[string]any{
				"fullname":     "Bob The Builder",
				"phone_number": "08123x5678",
			},
			wantErr: "Phone number must start with zero, contain only numbers, and have no spaces.",
		},
		{
			name: "phone too short",
			payload: map[string]any{
				"fullname":     "Bob The Builder",
				"phone_number": "0812345",
			},
			wantErr: "Phone number length must be between 10 and 20 digits.",
		},
		{
			name: "phone too long",
			payload: map[string]any{
				"fullname":     "Bob The Builder",
				"phone_number": "081234567890123456789",
			},
			wantErr: "Phone number length must be between 10 and 20 digits.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCreateContact(tt.payload)
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateUpdateContact(t *testing.T) {
	// Both fields are optional on update.
	require.NoError(t, ValidateUpdateContact(map[string]any{}))
	require.NoError(t, ValidateUpdateContact(map[string]any{"fullname": "Bob The Builder"}))
	require.NoError(t, ValidateUpdateContact(map[string]any{"phone_number": "0812345678"}))

	err := ValidateUpdateContact(map[string]any{"phone_number": "123"})
	require.EqualError(t, err, "Phone number must start with zero, contain only numbers, and have no spaces.")

	err = ValidateUpdateContact(map[string]any{"fullname": "Bob"})
	require.EqualError(t, err, "Fullname must be between 10 and 200 characters long.")

	// Present fields of the wrong type are rejected, not ignored.
	err = ValidateUpdateContact(map[string]any{"fullname": 123})
	require.EqualError(t, err, "Fullname must be a string.")

	err = ValidateUpdateContact(map[string]any{"phone_number": 812345678})
	require.EqualError(t, err, "Phone number must be a string.")
}
