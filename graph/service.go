package graph

import (
	"errors"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/lumicoach/coaching-api/db"
	"github.com/lumicoach/coaching-api/models"
	"github.com/lumicoach/coaching-api/pricing"
	"github.com/lumicoach/coaching-api/utils"
)

// ServiceWithCoupon is the atomic result of applying a coupon: the service
// snapshot, the applied code, and the per-region discount breakdown.
type ServiceWithCoupon struct {
	Service    models.Service
	CouponCode string
	Discounts  []pricing.RegionDiscount
}

func resolveServices(p graphql.ResolveParams) (interface{}, error) {
	var services []models.Service
	if err := db.DB.Find(&services).Error; err != nil {
		return nil, errors.New("Failed to fetch services")
	}
	return services, nil
}

func resolveService(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	var service models.Service
	if db.DB.First(&service, id).RowsAffected == 0 {
		return nil, errors.New("Service not found")
	}
	return service, nil
}

func resolveApplyCouponToService(p graphql.ResolveParams) (interface{}, error) {
	serviceID, err := parseID(p.Args["serviceId"])
	if err != nil {
		return nil, err
	}
	code, _ := p.Args["couponCode"].(string)

	var service models.Service
	if db.DB.First(&service, serviceID).RowsAffected == 0 {
		return nil, errors.New("Service not found")
	}

	var coupon models.Coupon
	if db.DB.Where("code = ?", code).First(&coupon).RowsAffected == 0 {
		return nil, errors.New("Invalid coupon")
	}

	discounts, err := pricing.ApplyCoupon(
		[]pricing.GeoPrice(service.Pricing),
		service.PricingRules(),
		pricing.Coupon{
			Code:      coupon.Code,
			Type:      coupon.Type,
			Value:     coupon.Value,
			Currency:  coupon.Currency,
			ExpiresAt: coupon.ExpirationDate,
		},
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	return ServiceWithCoupon{
		Service:    service,
		CouponCode: coupon.Code,
		Discounts:  discounts,
	}, nil
}

// resolveDisplayPrice picks the price entry matching the visitor's region,
// resolved from the client IP. Non-authoritative: booking and coupon
// application always re-resolve prices server-side.
func resolveDisplayPrice(p graphql.ResolveParams) (interface{}, error) {
	serviceID, err := parseID(p.Args["serviceId"])
	if err != nil {
		return nil, err
	}

	var service models.Service
	if db.DB.First(&service, serviceID).RowsAffected == 0 {
		return nil, errors.New("Service not found")
	}

	region := utils.LookupRegion(ClientIPFrom(p.Context))
	price, err := pricing.SelectRegionPrice(region, []pricing.GeoPrice(service.Pricing))
	if err != nil {
		return nil, err
	}
	return price, nil
}

func resolveCreateService(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAdmin(p.Context); err != nil {
		return nil, err
	}

	var in serviceInput
	if err := decodeInput(p.Args["input"], &in); err != nil {
		return nil, err
	}
	if in.Title == "" {
		return nil, errors.New("Missing required fields")
	}

	var service models.Service
	in.apply(&service)
	if err := db.DB.Create(&service).Error; err != nil {
		return nil, errors.New("Failed to create service")
	}
	return service, nil
}

func resolveUpdateService(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAdmin(p.Context); err != nil {
		return nil, err
	}

	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}

	var service models.Service
	if db.DB.First(&service, id).RowsAffected == 0 {
		return nil, errors.New("Service not found")
	}

	var in serviceInput
	if err := decodeInput(p.Args["input"], &in); err != nil {
		return nil, err
	}
	in.apply(&service)

	if err := db.DB.Save(&service).Error; err != nil {
		return nil, errors.New("Failed to update service")
	}
	return service, nil
}

func resolveDeleteService(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAdmin(p.Context); err != nil {
		return nil, err
	}

	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}

	var service models.Service
	if db.DB.First(&service, id).RowsAffected == 0 {
		return nil, errors.New("Service not found")
	}
	if err := db.DB.Delete(&service).Error; err != nil {
		return nil, errors.New("Failed to delete service")
	}
	return true, nil
}
