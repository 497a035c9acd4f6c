package models

import (
	"testing"
	"time"
)

func TestOTPExpiredBoundary(t *testing.T) {
	expiry := time.Date(2026, 3, 1, 10, 10, 0, 0, time.UTC)
	user := User{OTP: "123456", OTPExpiresAt: expiry}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"one second before expiry", expiry.Add(-time.Second), false},
		{"at the expiry instant", expiry, true},
		{"one second after expiry", expiry.Add(time.Second), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := user.OTPExpired(tt.now); got != tt.want {
				t.Errorf("OTPExpired(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestResetTokenExpiredBoundary(t *testing.T) {
	expiry := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
	user := User{ResetToken: "token", ResetTokenExpiresAt: expiry}

	if user.ResetTokenExpired(expiry.Add(-time.Second)) {
		t.Error("token should still be valid one second before expiry")
	}
	if !user.ResetTokenExpired(expiry) {
		t.Error("token should be expired at the expiry instant")
	}
	if !user.ResetTokenExpired(expiry.Add(time.Second)) {
		t.Error("token should be expired after the expiry instant")
	}
}
