package middleware

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
)

func TestExtractUserID(t *testing.T) {
	tests := []struct {
		name    string
		claims  jwt.MapClaims
		want    uint
		wantErr bool
	}{
		{"float64 id", jwt.MapClaims{"id": float64(42)}, 42, false},
		{"string id", jwt.MapClaims{"id": "42"}, 42, false},
		{"int id", jwt.MapClaims{"id": 42}, 42, false},
		{"missing id", jwt.MapClaims{}, 0, true},
		{"bad string", jwt.MapClaims{"id": "forty-two"}, 0, true},
		{"unsupported type", jwt.MapClaims{"id": []string{"42"}}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractUserID(tt.claims)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestExtractRole(t *testing.T) {
	tests := []struct {
		name    string
		claims  jwt.MapClaims
		want    string
		wantErr bool
	}{
		{"admin role", jwt.MapClaims{"role": "admin"}, "admin", false},
		{"user role", jwt.MapClaims{"role": "user"}, "user", false},
		{"missing role", jwt.MapClaims{}, "", true},
		{"non-string role", jwt.MapClaims{"role": 3}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractRole(tt.claims)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
