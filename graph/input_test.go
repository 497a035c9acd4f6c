package graph

import (
	"testing"

	"github.com/lumicoach/coaching-api/models"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		in      interface{}
		want    uint
		wantErr bool
	}{
		{"string", "7", 7, false},
		{"int", 7, 7, false},
		{"float64", float64(7), 7, false},
		{"not a number", "seven", 0, true},
		{"negative int", -7, 0, true},
		{"negative float64", float64(-7), 0, true},
		{"negative string", "-7", 0, true},
		{"nil", nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseID(tt.in)
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

func TestServiceInputDecodeAndApply(t *testing.T) {
	args := map[string]interface{}{
		"title":          "Executive coaching",
		"category":       "coaching",
		"targetAudience": []interface{}{"managers", "founders"},
		"pricing": []interface{}{
			map[string]interface{}{"region": "europe", "amount": 250.0, "currency": "EUR"},
		},
		"billing": map[string]interface{}{
			"type":         "subscription",
			"periodicity":  "monthly",
			"installments": 6,
		},
		"couponRules": map[string]interface{}{
			"allowed":     true,
			"maxDiscount": 15.0,
		},
	}

	var in serviceInput
	if err := decodeInput(args, &in); err != nil {
		t.Fatalf("decodeInput failed: %v", err)
	}

	var svc models.Service
	in.apply(&svc)

	if svc.Title != "Executive coaching" {
		t.Errorf("title not applied: %q", svc.Title)
	}
	if len(svc.TargetAudience) != 2 || svc.TargetAudience[0] != "managers" {
		t.Errorf("target audience not applied: %+v", svc.TargetAudience)
	}
	if len(svc.Pricing) != 1 || svc.Pricing[0].Amount != 250 || svc.Pricing[0].Region != "europe" {
		t.Errorf("pricing not applied: %+v", svc.Pricing)
	}
	if svc.Billing.Type != "subscription" || svc.Billing.Installments != 6 {
		t.Errorf("billing not applied: %+v", svc.Billing)
	}
	if !svc.CouponRules.Allowed || svc.CouponRules.MaxDiscount == nil || *svc.CouponRules.MaxDiscount != 15 {
		t.Errorf("coupon rules not applied: %+v", svc.CouponRules)
	}
}

func TestDecodeInputRejectsUnmappableValues(t *testing.T) {
	var in couponInput
	err := decodeInput(map[string]interface{}{"expirationDate": "not-a-date"}, &in)
	if err == nil {
		t.Fatal("expected error for bad timestamp")
	}
}
