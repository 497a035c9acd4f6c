package graph

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/lumicoach/coaching-api/models"
	"github.com/lumicoach/coaching-api/pricing"
)

// decodeInput maps a coerced GraphQL argument map onto a typed input
// struct via a JSON round trip.
func decodeInput(src interface{}, dst interface{}) error {
	data, err := json.Marshal(src)
	if err != nil {
		return errors.New("Invalid input")
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return errors.New("Invalid input")
	}
	return nil
}

func parseID(v interface{}) (uint, error) {
	switch id := v.(type) {
	case string:
		parsed, err := strconv.ParseUint(id, 10, 64)
		if err != nil {
			return 0, errors.New("Invalid ID")
		}
		return uint(parsed), nil
	case int:
		if id < 0 {
			return 0, errors.New("Invalid ID")
		}
		return uint(id), nil
	case float64:
		if id < 0 {
			return 0, errors.New("Invalid ID")
		}
		return uint(id), nil
	default:
		return 0, errors.New("Invalid ID")
	}
}

type billingModeInput struct {
	Type         string `json:"type"`
	Periodicity  string `json:"periodicity"`
	Installments int    `json:"installments"`
	Expiration   string `json:"expiration"`
	Rules        string `json:"rules"`
}

type couponRulesInput struct {
	Allowed     bool     `json:"allowed"`
	MaxDiscount *float64 `json:"maxDiscount"`
	Combinable  bool     `json:"combinable"`
}

type serviceInput struct {
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	Category       string             `json:"category"`
	Methodology    string             `json:"methodology"`
	TargetAudience []string           `json:"targetAudience"`
	Pricing        []pricing.GeoPrice `json:"pricing"`
	Billing        *billingModeInput  `json:"billing"`
	CouponRules    *couponRulesInput  `json:"couponRules"`
}

func (in *serviceInput) apply(svc *models.Service) {
	svc.Title = in.Title
	svc.Description = in.Description
	svc.Category = in.Category
	svc.Methodology = in.Methodology
	svc.TargetAudience = models.StringList(in.TargetAudience)
	svc.Pricing = models.GeoPriceList(in.Pricing)
	if in.Billing != nil {
		svc.Billing = models.BillingMode{
			Type:         in.Billing.Type,
			Periodicity:  in.Billing.Periodicity,
			Installments: in.Billing.Installments,
			Expiration:   in.Billing.Expiration,
			Rules:        in.Billing.Rules,
		}
	}
	if in.CouponRules != nil {
		svc.CouponRules = models.CouponRules{
			Allowed:     in.CouponRules.Allowed,
			MaxDiscount: in.CouponRules.MaxDiscount,
			Combinable:  in.CouponRules.Combinable,
		}
	}
}

type couponInput struct {
	Code           string    `json:"code"`
	Type           string    `json:"type"`
	Value          float64   `json:"value"`
	Currency       string    `json:"currency"`
	ExpirationDate time.Time `json:"expirationDate"`
}

type appointmentInput struct {
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	DateTime time.Time `json:"dateTime"`
	Type     string    `json:"type"`
	Notes    string    `json:"notes"`
}

type articleInput struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content"`
	CoverURL  string `json:"coverUrl"`
	Published bool   `json:"published"`
}

type testimonialInput struct {
	Author    string  `json:"author"`
	Role      string  `json:"role"`
	Content   string  `json:"content"`
	Rating    float64 `json:"rating"`
	AvatarURL string  `json:"avatarUrl"`
}

type newsInput struct {
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	ImageURL    string     `json:"imageUrl"`
	PublishedAt *time.Time `json:"publishedAt"`
}

type kpiRecordInput struct {
	Metric     string     `json:"metric"`
	Value      float64    `json:"value"`
	Unit       string     `json:"unit"`
	RecordedAt *time.Time `json:"recordedAt"`
	Notes      string     `json:"notes"`
}

type userUpdateInput struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
	AvatarURL string `json:"avatarUrl"`
	Bio       string `json:"bio"`
}
