package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestGenerateOTPFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		otp := GenerateOTP()
		if len(otp) != 6 {
			t.Fatalf("expected 6 digits, got %q", otp)
		}
		for _, r := range otp {
			if r < '0' || r > '9' {
				t.Fatalf("expected numeric code, got %q", otp)
			}
		}
	}
}

func TestGenerateResetToken(t *testing.T) {
	token := GenerateResetToken()
	if _, err := uuid.Parse(token); err != nil {
		t.Fatalf("expected a valid UUID, got %q: %v", token, err)
	}
	if token == GenerateResetToken() {
		t.Fatal("expected unique tokens")
	}
}
