package pricing

import (
	"errors"
	"testing"
	"time"
)

var (
	past   = time.Now().Add(-time.Hour)
	future = time.Now().Add(time.Hour)
)

func ptr(f float64) *float64 { return &f }

func euro(amount float64) GeoPrice {
	return GeoPrice{Region: "europe", Amount: amount, Currency: "EUR"}
}

func TestApplyCouponFixed(t *testing.T) {
	prices := []GeoPrice{
		euro(100),
		{Region: "north america", Amount: 120, Currency: "USD"},
	}
	coupon := Coupon{Code: "WELCOME20", Type: TypeFixed, Value: 20, ExpiresAt: future}

	discounts, err := ApplyCoupon(prices, Rules{Allowed: true}, coupon, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(discounts) != 2 {
		t.Fatalf("expected 2 discounts, got %d", len(discounts))
	}
	if discounts[0].DiscountedPrice != 80 {
		t.Errorf("europe: expected 80, got %v", discounts[0].DiscountedPrice)
	}
	if discounts[1].DiscountedPrice != 100 {
		t.Errorf("north america: expected 100, got %v", discounts[1].DiscountedPrice)
	}
	if discounts[0].OriginalPrice != 100 || discounts[0].Currency != "EUR" {
		t.Errorf("original entry not carried over: %+v", discounts[0])
	}
}

func TestApplyCouponFixedFloorsAtZero(t *testing.T) {
	coupon := Coupon{Type: TypeFixed, Value: 150, ExpiresAt: future}

	discounts, err := ApplyCoupon([]GeoPrice{euro(100)}, Rules{Allowed: true}, coupon, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if discounts[0].DiscountedPrice != 0 {
		t.Errorf("expected floor at 0, got %v", discounts[0].DiscountedPrice)
	}
}

func TestApplyCouponPercent(t *testing.T) {
	tests := []struct {
		name        string
		value       float64
		maxDiscount *float64
		want        float64
	}{
		{"plain percent", 30, nil, 70},
		{"capped by maxDiscount", 30, ptr(10), 90},
		{"under the cap", 5, ptr(10), 95},
		{"full discount", 100, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coupon := Coupon{Type: TypePercent, Value: tt.value, ExpiresAt: future}
			rules := Rules{Allowed: true, MaxDiscount: tt.maxDiscount}

			discounts, err := ApplyCoupon([]GeoPrice{euro(100)}, rules, coupon, time.Now())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if discounts[0].DiscountedPrice != tt.want {
				t.Errorf("expected %v, got %v", tt.want, discounts[0].DiscountedPrice)
			}
		})
	}
}

func TestApplyCouponExpired(t *testing.T) {
	coupon := Coupon{Type: TypeFixed, Value: 20, ExpiresAt: past}

	// Expiry is checked before anything else, even eligibility.
	_, err := ApplyCoupon([]GeoPrice{euro(100)}, Rules{Allowed: false}, coupon, time.Now())
	if !errors.Is(err, ErrCouponExpired) {
		t.Fatalf("expected ErrCouponExpired, got %v", err)
	}
}

func TestApplyCouponNotAllowed(t *testing.T) {
	coupon := Coupon{Type: TypeFixed, Value: 20, ExpiresAt: future}

	_, err := ApplyCoupon([]GeoPrice{euro(100)}, Rules{Allowed: false}, coupon, time.Now())
	if !errors.Is(err, ErrCouponsNotAllowed) {
		t.Fatalf("expected ErrCouponsNotAllowed, got %v", err)
	}
}

func TestApplyCouponEmptyPricing(t *testing.T) {
	coupon := Coupon{Type: TypeFixed, Value: 20, ExpiresAt: future}

	_, err := ApplyCoupon(nil, Rules{Allowed: true}, coupon, time.Now())
	if !errors.Is(err, ErrInvalidPricing) {
		t.Fatalf("expected ErrInvalidPricing, got %v", err)
	}
}

func TestApplyCouponUnsupportedType(t *testing.T) {
	coupon := Coupon{Type: "BOGO", Value: 20, ExpiresAt: future}

	_, err := ApplyCoupon([]GeoPrice{euro(100)}, Rules{Allowed: true}, coupon, time.Now())
	if !errors.Is(err, ErrUnsupportedCoupon) {
		t.Fatalf("expected ErrUnsupportedCoupon, got %v", err)
	}
}

func TestApplyCouponSkipsEntriesWithoutRegion(t *testing.T) {
	prices := []GeoPrice{
		{Region: "", Amount: 50, Currency: "EUR"},
		euro(100),
	}
	coupon := Coupon{Type: TypeFixed, Value: 20, ExpiresAt: future}

	discounts, err := ApplyCoupon(prices, Rules{Allowed: true}, coupon, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(discounts) != 1 || discounts[0].Region != "europe" {
		t.Fatalf("expected only the europe entry, got %+v", discounts)
	}
}

func TestApplyCouponNoValidEntries(t *testing.T) {
	prices := []GeoPrice{{Region: "", Amount: 50, Currency: "EUR"}}
	coupon := Coupon{Type: TypeFixed, Value: 20, ExpiresAt: future}

	_, err := ApplyCoupon(prices, Rules{Allowed: true}, coupon, time.Now())
	if !errors.Is(err, ErrNoValidPricing) {
		t.Fatalf("expected ErrNoValidPricing, got %v", err)
	}
}

func TestApplyCouponDoesNotMutateInput(t *testing.T) {
	prices := []GeoPrice{euro(100)}
	coupon := Coupon{Type: TypePercent, Value: 30, ExpiresAt: future}

	if _, err := ApplyCoupon(prices, Rules{Allowed: true}, coupon, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prices[0].Amount != 100 {
		t.Errorf("input price list was mutated: %+v", prices[0])
	}
}

func TestParseGeoPrices(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{"array", `[{"region":"europe","amount":100,"currency":"EUR"}]`, 1, false},
		{"single object", `{"region":"europe","amount":100,"currency":"EUR"}`, 1, false},
		{"double-encoded", `"[{\"region\":\"europe\",\"amount\":100,\"currency\":\"EUR\"}]"`, 1, false},
		{"numeric string amount", `[{"region":"europe","amount":"100","currency":"EUR"}]`, 1, false},
		{"non-numeric amount dropped", `[{"region":"europe","amount":"free","currency":"EUR"},{"region":"asia","amount":80,"currency":"USD"}]`, 1, false},
		{"missing amount dropped", `[{"region":"europe","currency":"EUR"}]`, 0, false},
		{"empty", ``, 0, false},
		{"null", `null`, 0, false},
		{"garbage", `not json at all`, 0, true},
		{"wrapped garbage", `"not json at all"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGeoPrices([]byte(tt.raw))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPricing) {
					t.Fatalf("expected ErrInvalidPricing, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.want {
				t.Fatalf("expected %d entries, got %d: %+v", tt.want, len(got), got)
			}
		})
	}
}

func TestParseGeoPricesKeepsValues(t *testing.T) {
	got, err := ParseGeoPrices([]byte(`[{"region":"Europe","amount":99.5,"currency":"EUR"}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := GeoPrice{Region: "Europe", Amount: 99.5, Currency: "EUR"}
	if got[0] != want {
		t.Errorf("expected %+v, got %+v", want, got[0])
	}
}

func TestSelectRegionPrice(t *testing.T) {
	prices := []GeoPrice{
		{Region: "Europe", Amount: 100, Currency: "EUR"},
		{Region: "North America", Amount: 120, Currency: "USD"},
	}

	tests := []struct {
		name   string
		region string
		want   string
	}{
		{"exact match", "Europe", "EUR"},
		{"case-insensitive match", "north america", "USD"},
		{"unknown region falls back to first", "oceania", "EUR"},
		{"empty region falls back to first", "", "EUR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectRegionPrice(tt.region, prices)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Currency != tt.want {
				t.Errorf("expected currency %s, got %s", tt.want, got.Currency)
			}
		})
	}
}

func TestSelectRegionPriceEmptyList(t *testing.T) {
	_, err := SelectRegionPrice("europe", nil)
	if !errors.Is(err, ErrNoPricingAvailable) {
		t.Fatalf("expected ErrNoPricingAvailable, got %v", err)
	}
}
