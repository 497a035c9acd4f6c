package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/lumicoach/coaching-api/pricing"
	"gorm.io/gorm"
)

// GeoPriceList stores the per-region price list as JSONB. Historical rows
// carry the list as an array, a bare object, or a double-encoded JSON
// string; Scan normalizes all three into a typed list so nothing downstream
// has to re-derive it.
type GeoPriceList []pricing.GeoPrice

// Value implements the driver.Valuer interface
func (l GeoPriceList) Value() (driver.Value, error) {
	jsonData, err := json.Marshal([]pricing.GeoPrice(l))
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (l *GeoPriceList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal GeoPriceList: unsupported type %T", value)
	}

	parsed, err := pricing.ParseGeoPrices(data)
	if err != nil {
		// Tolerate bad historical rows on read; the coupon engine rejects
		// the empty list when someone tries to discount against it.
		log.Printf("GeoPriceList: dropping unparseable pricing payload: %v", err)
		*l = nil
		return nil
	}
	*l = parsed
	return nil
}

// StringList stores a list of strings as JSONB.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	jsonData, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal StringList: unsupported type %T", value)
	}

	return json.Unmarshal(data, s)
}

// BillingMode describes how a service is charged.
type BillingMode struct {
	Type         string `json:"type"` // "one_time", "subscription", "installments"
	Periodicity  string `json:"periodicity,omitempty"`
	Installments int    `json:"installments,omitempty"`
	Expiration   string `json:"expiration,omitempty"`
	Rules        string `json:"rules,omitempty"`
}

func (b BillingMode) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

func (b *BillingMode) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal BillingMode: unsupported type %T", value)
	}

	return json.Unmarshal(data, b)
}

// CouponRules is the per-service coupon eligibility configuration.
type CouponRules struct {
	Allowed     bool     `json:"allowed"`
	MaxDiscount *float64 `json:"maxDiscount"`
	Combinable  bool     `json:"combinable"`
}

type Service struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Category       string         `json:"category"`
	Methodology    string         `json:"methodology"`
	TargetAudience StringList     `json:"targetAudience" gorm:"type:jsonb"`
	Pricing        GeoPriceList   `json:"pricing" gorm:"type:jsonb"`
	Billing        BillingMode    `json:"billing" gorm:"type:jsonb"`
	CouponRules    CouponRules    `json:"couponRules" gorm:"embedded;embeddedPrefix:coupon_"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

// PricingRules adapts the stored rules to what the coupon engine expects.
func (s *Service) PricingRules() pricing.Rules {
	return pricing.Rules{
		Allowed:     s.CouponRules.Allowed,
		MaxDiscount: s.CouponRules.MaxDiscount,
		Combinable:  s.CouponRules.Combinable,
	}
}
