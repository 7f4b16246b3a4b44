package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name    string
		req     SignupReq
		wantErr string
	}{
		{
			name: "user without category",
			req:  SignupReq{Role: "user"},
		},
		{
			name: "admin",
			req:  SignupReq{Role: "admin"},
		},
		{
			name: "vendor with valid category",
			req:  SignupReq{Role: "vendor", Category: strptr("catering")},
		},
		{
			name:    "vendor without category",
			req:     SignupReq{Role: "vendor"},
			wantErr: "category is required for vendor",
		},
		{
			name:    "vendor with empty category",
			req:     SignupReq{Role: "vendor", Category: strptr("")},
			wantErr: "category is required for vendor",
		},
		{
			name:    "vendor with unknown category",
			req:     SignupReq{Role: "vendor", Category: strptr("plumbing")},
			wantErr: "invalid category",
		},
		{
			name:    "unknown role",
			req:     SignupReq{Role: "superuser"},
			wantErr: "invalid role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSignup(tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
