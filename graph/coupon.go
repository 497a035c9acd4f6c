package graph

import (
	"errors"

	"github.com/graphql-go/graphql"
	"github.com/lumicoach/coaching-api/db"
	"github.com/lumicoach/coaching-api/models"
	"github.com/lumicoach/coaching-api/pricing"
)

func resolveCoupons(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAdmin(p.Context); err != nil {
		return nil, err
	}

	var coupons []models.Coupon
	if err := db.DB.Find(&coupons).Error; err != nil {
		return nil, errors.New("Failed to fetch coupons")
	}
	return coupons, nil
}

func resolveCoupon(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAdmin(p.Context); err != nil {
		return nil, err
	}

	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	var coupon models.Coupon
	if db.DB.First(&coupon, id).RowsAffected == 0 {
		return nil, errors.New("Coupon not found")
	}
	return coupon, nil
}

func resolveCreateCoupon(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAdmin(p.Context); err != nil {
		return nil, err
	}

	var in couponInput
	if err := decodeInput(p.Args["input"], &in); err != nil {
		return nil, err
	}
	if in.Type != pricing.TypeFixed && in.Type != pricing.TypePercent {
		return nil, errors.New("Unsupported coupon type")
	}

	var existing models.Coupon
	if db.DB.Where("code = ?", in.Code).First(&existing).RowsAffected > 0 {
		return nil, errors.New("Coupon with this code already exists")
	}

	coupon := models.Coupon{
		Code:           in.Code,
		Type:           in.Type,
		Value:          in.Value,
		Currency:       in.Currency,
		ExpirationDate: in.ExpirationDate,
	}
	if err := db.DB.Create(&coupon).Error; err != nil {
		return nil, errors.New("Failed to create coupon")
	}
	return coupon, nil
}

func resolveUpdateCoupon(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAdmin(p.Context); err != nil {
		return nil, err
	}

	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}

	var coupon models.Coupon
	if db.DB.First(&coupon, id).RowsAffected == 0 {
		return nil, errors.New("Coupon not found")
	}

	var in couponInput
	if err := decodeInput(p.Args["input"], &in); err != nil {
		return nil, err
	}
	if in.Type != pricing.TypeFixed && in.Type != pricing.TypePercent {
		return nil, errors.New("Unsupported coupon type")
	}

	coupon.Code = in.Code
	coupon.Type = in.Type
	coupon.Value = in.Value
	coupon.Currency = in.Currency
	coupon.ExpirationDate = in.ExpirationDate
	if err := db.DB.Save(&coupon).Error; err != nil {
		return nil, errors.New("Failed to update coupon")
	}
	return coupon, nil
}

func resolveDeleteCoupon(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAdmin(p.Context); err != nil {
		return nil, err
	}

	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}

	var coupon models.Coupon
	if db.DB.First(&coupon, id).RowsAffected == 0 {
		return nil, errors.New("Coupon not found")
	}
	if err := db.DB.Delete(&coupon).Error; err != nil {
		return nil, errors.New("Failed to delete coupon")
	}
	return true, nil
}
