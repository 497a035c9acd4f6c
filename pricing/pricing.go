package pricing

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

// Coupon types accepted by ApplyCoupon.
const (
	TypeFixed   = "FIXED"
	TypePercent = "PERCENT"
)

var (
	ErrCouponExpired      = errors.New("Coupon has expired")
	ErrCouponsNotAllowed  = errors.New("Coupons are not allowed for this service")
	ErrInvalidPricing     = errors.New("Invalid pricing data")
	ErrUnsupportedCoupon  = errors.New("Unsupported coupon type")
	ErrNoValidPricing     = errors.New("No valid pricing found for this service")
	ErrNoPricingAvailable = errors.New("No pricing available for this service")
)

// GeoPrice is a service's price in one market.
type GeoPrice struct {
	Region   string  `json:"region"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Rules are the per-service coupon eligibility rules.
type Rules struct {
	Allowed     bool     `json:"allowed"`
	MaxDiscount *float64 `json:"maxDiscount"`
	Combinable  bool     `json:"combinable"`
}

// Coupon is the snapshot the engine needs; it never mutates the record.
type Coupon struct {
	Code      string
	Type      string
	Value     float64
	Currency  string
	ExpiresAt time.Time
}

// RegionDiscount is the per-region outcome of applying a coupon.
type RegionDiscount struct {
	Region          string  `json:"region"`
	Currency        string  `json:"currency"`
	OriginalPrice   float64 `json:"originalPrice"`
	DiscountedPrice float64 `json:"discountedPrice"`
}

// ParseGeoPrices normalizes the historical pricing shapes into a typed list.
// Accepted inputs: a JSON array of entries, a single entry object, or a
// JSON string that itself encodes either of those. Entries whose amount is
// not numeric (bare number or numeric string) are dropped.
func ParseGeoPrices(raw []byte) ([]GeoPrice, error) {
	data := []byte(strings.TrimSpace(string(raw)))
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}

	// Double-encoded: a JSON string wrapping the real payload.
	if data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return nil, ErrInvalidPricing
		}
		return ParseGeoPrices([]byte(inner))
	}

	var entries []json.RawMessage
	if data[0] == '{' {
		entries = []json.RawMessage{data}
	} else if err := json.Unmarshal(data, &entries); err != nil {
		return nil, ErrInvalidPricing
	}

	list := make([]GeoPrice, 0, len(entries))
	for _, raw := range entries {
		var entry struct {
			Region   string          `json:"region"`
			Amount   json.RawMessage `json:"amount"`
			Currency string          `json:"currency"`
		}
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, ErrInvalidPricing
		}
		amount, ok := parseAmount(entry.Amount)
		if !ok {
			continue
		}
		list = append(list, GeoPrice{
			Region:   entry.Region,
			Amount:   amount,
			Currency: entry.Currency,
		})
	}
	return list, nil
}

func parseAmount(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var amount float64
	if err := json.Unmarshal(raw, &amount); err == nil {
		return amount, true
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		amount, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err == nil {
			return amount, true
		}
	}
	return 0, false
}

// ApplyCoupon computes the discounted price per region entry.
//
// Preconditions are checked in order: coupon expiry, service eligibility,
// presence of pricing entries. Entries without a region or with a
// non-positive-parseable amount are skipped. The discounted amount is never
// negative. The result is all-or-nothing; on error no partial list is
// returned.
func ApplyCoupon(prices []GeoPrice, rules Rules, coupon Coupon, now time.Time) ([]RegionDiscount, error) {
	if coupon.ExpiresAt.Before(now) {
		return nil, ErrCouponExpired
	}
	if !rules.Allowed {
		return nil, ErrCouponsNotAllowed
	}
	if len(prices) == 0 {
		return nil, ErrInvalidPricing
	}

	maxDiscount := 100.0
	if rules.MaxDiscount != nil {
		maxDiscount = *rules.MaxDiscount
	}

	discounts := make([]RegionDiscount, 0, len(prices))
	for _, entry := range prices {
		if entry.Region == "" {
			continue
		}

		var discounted float64
		switch coupon.Type {
		case TypeFixed:
			discounted = entry.Amount - coupon.Value
		case TypePercent:
			percent := coupon.Value
			if percent > maxDiscount {
				percent = maxDiscount
			}
			discounted = entry.Amount * (1 - percent/100)
		default:
			return nil, ErrUnsupportedCoupon
		}

		if discounted < 0 {
			discounted = 0
		}
		discounts = append(discounts, RegionDiscount{
			Region:          entry.Region,
			Currency:        entry.Currency,
			OriginalPrice:   entry.Amount,
			DiscountedPrice: discounted,
		})
	}

	if len(discounts) == 0 {
		return nil, ErrNoValidPricing
	}
	return discounts, nil
}

// SelectRegionPrice picks the display price for a visitor region. The match
// is case-insensitive; when nothing matches the first entry wins. This is a
// presentation convenience, the authoritative price is always resolved at
// coupon-application or booking time.
func SelectRegionPrice(region string, prices []GeoPrice) (GeoPrice, error) {
	if len(prices) == 0 {
		return GeoPrice{}, ErrNoPricingAvailable
	}
	for _, entry := range prices {
		if strings.EqualFold(entry.Region, region) {
			return entry, nil
		}
	}
	return prices[0], nil
}
