package graph

import (
	"github.com/graphql-go/graphql"
)

var geoPriceType = graphql.NewObject(graphql.ObjectConfig{
	Name: "GeoPrice",
	Fields: graphql.Fields{
		"region":   &graphql.Field{Type: graphql.String},
		"amount":   &graphql.Field{Type: graphql.Float},
		"currency": &graphql.Field{Type: graphql.String},
	},
})

var couponRulesType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CouponRules",
	Fields: graphql.Fields{
		"allowed":     &graphql.Field{Type: graphql.Boolean},
		"maxDiscount": &graphql.Field{Type: graphql.Float},
		"combinable":  &graphql.Field{Type: graphql.Boolean},
	},
})

var billingModeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "BillingMode",
	Fields: graphql.Fields{
		"type":         &graphql.Field{Type: graphql.String},
		"periodicity":  &graphql.Field{Type: graphql.String},
		"installments": &graphql.Field{Type: graphql.Int},
		"expiration":   &graphql.Field{Type: graphql.String},
		"rules":        &graphql.Field{Type: graphql.String},
	},
})

var serviceType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Service",
	Fields: graphql.Fields{
		"id":             &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"title":          &graphql.Field{Type: graphql.String},
		"description":    &graphql.Field{Type: graphql.String},
		"category":       &graphql.Field{Type: graphql.String},
		"methodology":    &graphql.Field{Type: graphql.String},
		"targetAudience": &graphql.Field{Type: graphql.NewList(graphql.String)},
		"pricing":        &graphql.Field{Type: graphql.NewList(geoPriceType)},
		"billing":        &graphql.Field{Type: billingModeType},
		"couponRules":    &graphql.Field{Type: couponRulesType},
		"createdAt":      &graphql.Field{Type: graphql.DateTime},
		"updatedAt":      &graphql.Field{Type: graphql.DateTime},
	},
})

var couponType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Coupon",
	Fields: graphql.Fields{
		"id":             &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"code":           &graphql.Field{Type: graphql.String},
		"type":           &graphql.Field{Type: graphql.String},
		"value":          &graphql.Field{Type: graphql.Float},
		"currency":       &graphql.Field{Type: graphql.String},
		"expirationDate": &graphql.Field{Type: graphql.DateTime},
	},
})

var regionDiscountType = graphql.NewObject(graphql.ObjectConfig{
	Name: "RegionDiscount",
	Fields: graphql.Fields{
		"region":          &graphql.Field{Type: graphql.String},
		"currency":        &graphql.Field{Type: graphql.String},
		"originalPrice":   &graphql.Field{Type: graphql.Float},
		"discountedPrice": &graphql.Field{Type: graphql.Float},
	},
})

var serviceWithCouponType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ServiceWithCoupon",
	Fields: graphql.Fields{
		"service":    &graphql.Field{Type: serviceType},
		"couponCode": &graphql.Field{Type: graphql.String},
		"discounts":  &graphql.Field{Type: graphql.NewList(regionDiscountType)},
	},
})

var appointmentType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Appointment",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":      &graphql.Field{Type: graphql.String},
		"email":     &graphql.Field{Type: graphql.String},
		"phone":     &graphql.Field{Type: graphql.String},
		"dateTime":  &graphql.Field{Type: graphql.DateTime},
		"type":      &graphql.Field{Type: graphql.String},
		"notes":     &graphql.Field{Type: graphql.String},
		"createdAt": &graphql.Field{Type: graphql.DateTime},
	},
})

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":      &graphql.Field{Type: graphql.String},
		"email":     &graphql.Field{Type: graphql.String},
		"role":      &graphql.Field{Type: graphql.String},
		"phone":     &graphql.Field{Type: graphql.String},
		"avatarUrl": &graphql.Field{Type: graphql.String},
		"bio":       &graphql.Field{Type: graphql.String},
		"createdAt": &graphql.Field{Type: graphql.DateTime},
	},
})

var authPayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "AuthPayload",
	Fields: graphql.Fields{
		"token":        &graphql.Field{Type: graphql.String},
		"refreshToken": &graphql.Field{Type: graphql.String},
		"user":         &graphql.Field{Type: userType},
	},
})

var commentType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Comment",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"articleId": &graphql.Field{Type: graphql.ID},
		"author":    &graphql.Field{Type: graphql.String},
		"email":     &graphql.Field{Type: graphql.String},
		"content":   &graphql.Field{Type: graphql.String},
		"createdAt": &graphql.Field{Type: graphql.DateTime},
	},
})

var articleType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Article",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"title":     &graphql.Field{Type: graphql.String},
		"slug":      &graphql.Field{Type: graphql.String},
		"excerpt":   &graphql.Field{Type: graphql.String},
		"content":   &graphql.Field{Type: graphql.String},
		"coverUrl":  &graphql.Field{Type: graphql.String},
		"published": &graphql.Field{Type: graphql.Boolean},
		"comments":  &graphql.Field{Type: graphql.NewList(commentType)},
		"createdAt": &graphql.Field{Type: graphql.DateTime},
	},
})

var testimonialType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Testimonial",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"author":    &graphql.Field{Type: graphql.String},
		"role":      &graphql.Field{Type: graphql.String},
		"content":   &graphql.Field{Type: graphql.String},
		"rating":    &graphql.Field{Type: graphql.Float},
		"avatarUrl": &graphql.Field{Type: graphql.String},
	},
})

var newsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "News",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"title":       &graphql.Field{Type: graphql.String},
		"body":        &graphql.Field{Type: graphql.String},
		"imageUrl":    &graphql.Field{Type: graphql.String},
		"publishedAt": &graphql.Field{Type: graphql.DateTime},
	},
})

var kpiRecordType = graphql.NewObject(graphql.ObjectConfig{
	Name: "KPIRecord",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"userId":     &graphql.Field{Type: graphql.ID},
		"metric":     &graphql.Field{Type: graphql.String},
		"value":      &graphql.Field{Type: graphql.Float},
		"unit":       &graphql.Field{Type: graphql.String},
		"recordedAt": &graphql.Field{Type: graphql.DateTime},
		"notes":      &graphql.Field{Type: graphql.String},
	},
})

var geoPriceInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "GeoPriceInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"region":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"amount":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"currency": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var billingModeInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "BillingModeInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"type":         &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"periodicity":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"installments": &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"expiration":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"rules":        &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var couponRulesInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CouponRulesInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"allowed":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Boolean)},
		"maxDiscount": &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"combinable":  &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
	},
})

var serviceInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ServiceInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":          &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"description":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"category":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"methodology":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"targetAudience": &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.String)},
		"pricing":        &graphql.InputObjectFieldConfig{Type: graphql.NewList(geoPriceInputType)},
		"billing":        &graphql.InputObjectFieldConfig{Type: billingModeInputType},
		"couponRules":    &graphql.InputObjectFieldConfig{Type: couponRulesInputType},
	},
})

var couponInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CouponInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"code":           &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"type":           &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"value":          &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"currency":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"expirationDate": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.DateTime)},
	},
})

var appointmentInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "AppointmentInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"phone":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"dateTime": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.DateTime)},
		"type":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"notes":    &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var articleInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ArticleInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"slug":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"excerpt":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"content":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"coverUrl":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"published": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
	},
})

var testimonialInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "TestimonialInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"author":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"role":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"content":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"rating":    &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"avatarUrl": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var newsInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "NewsInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"body":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"imageUrl":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"publishedAt": &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
	},
})

var kpiRecordInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "KPIRecordInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"metric":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"value":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"unit":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"recordedAt": &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"notes":      &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var userUpdateInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UserUpdateInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"role":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"phone":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"avatarUrl": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"bio":       &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

func idArg() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}
}

// BuildSchema assembles the full schema served at /graphql.
func BuildSchema() (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"services": &graphql.Field{Type: graphql.NewList(serviceType), Resolve: resolveServices},
			"service":  &graphql.Field{Type: serviceType, Args: idArg(), Resolve: resolveService},
			"applyCouponToService": &graphql.Field{
				Type: graphql.NewNonNull(serviceWithCouponType),
				Args: graphql.FieldConfigArgument{
					"serviceId":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"couponCode": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: resolveApplyCouponToService,
			},
			"resolveDisplayPrice": &graphql.Field{
				Type: geoPriceType,
				Args: graphql.FieldConfigArgument{
					"serviceId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: resolveDisplayPrice,
			},
			"coupons":      &graphql.Field{Type: graphql.NewList(couponType), Resolve: resolveCoupons},
			"coupon":       &graphql.Field{Type: couponType, Args: idArg(), Resolve: resolveCoupon},
			"appointments": &graphql.Field{Type: graphql.NewList(appointmentType), Resolve: resolveAppointments},
			"articles": &graphql.Field{
				Type:    graphql.NewList(articleType),
				Resolve: resolveArticles,
			},
			"article": &graphql.Field{
				Type: articleType,
				Args: graphql.FieldConfigArgument{
					"slug": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: resolveArticle,
			},
			"testimonials": &graphql.Field{Type: graphql.NewList(testimonialType), Resolve: resolveTestimonials},
			"news":         &graphql.Field{Type: graphql.NewList(newsType), Resolve: resolveNews},
			"kpiRecords": &graphql.Field{
				Type: graphql.NewList(kpiRecordType),
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: resolveKPIRecords,
			},
			"users": &graphql.Field{Type: graphql.NewList(userType), Resolve: resolveUsers},
			"me":    &graphql.Field{Type: userType, Resolve: resolveMe},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signup": &graphql.Field{
				Type: authPayloadType,
				Args: graphql.FieldConfigArgument{
					"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"phone":    &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: resolveSignup,
			},
			"login": &graphql.Field{
				Type: authPayloadType,
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: resolveLogin,
			},
			"requestPasswordReset": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"email": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: resolveRequestPasswordReset,
			},
			"resetPasswordWithOTP": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"email":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"otpCode":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"newPassword": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: resolveResetPasswordWithOTP,
			},
			"requestResetLink": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"email": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: resolveRequestResetLink,
			},
			"resetPasswordWithToken": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"token":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"newPassword": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: resolveResetPasswordWithToken,
			},
			"changePassword": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"currentPassword": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"newPassword":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: resolveChangePassword,
			},
			"createService": &graphql.Field{
				Type: serviceType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(serviceInputType)},
				},
				Resolve: resolveCreateService,
			},
			"updateService": &graphql.Field{
				Type: serviceType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(serviceInputType)},
				},
				Resolve: resolveUpdateService,
			},
			"deleteService": &graphql.Field{Type: graphql.Boolean, Args: idArg(), Resolve: resolveDeleteService},
			"createCoupon": &graphql.Field{
				Type: couponType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(couponInputType)},
				},
				Resolve: resolveCreateCoupon,
			},
			"updateCoupon": &graphql.Field{
				Type: couponType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(couponInputType)},
				},
				Resolve: resolveUpdateCoupon,
			},
			"deleteCoupon": &graphql.Field{Type: graphql.Boolean, Args: idArg(), Resolve: resolveDeleteCoupon},
			"createAppointment": &graphql.Field{
				Type: appointmentType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(appointmentInputType)},
				},
				Resolve: resolveCreateAppointment,
			},
			"deleteAppointment": &graphql.Field{Type: graphql.Boolean, Args: idArg(), Resolve: resolveDeleteAppointment},
			"createArticle": &graphql.Field{
				Type: articleType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(articleInputType)},
				},
				Resolve: resolveCreateArticle,
			},
			"updateArticle": &graphql.Field{
				Type: articleType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(articleInputType)},
				},
				Resolve: resolveUpdateArticle,
			},
			"deleteArticle": &graphql.Field{Type: graphql.Boolean, Args: idArg(), Resolve: resolveDeleteArticle},
			"createComment": &graphql.Field{
				Type: commentType,
				Args: graphql.FieldConfigArgument{
					"articleId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"author":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":     &graphql.ArgumentConfig{Type: graphql.String},
					"content":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: resolveCreateComment,
			},
			"deleteComment": &graphql.Field{Type: graphql.Boolean, Args: idArg(), Resolve: resolveDeleteComment},
			"createTestimonial": &graphql.Field{
				Type: testimonialType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(testimonialInputType)},
				},
				Resolve: resolveCreateTestimonial,
			},
			"updateTestimonial": &graphql.Field{
				Type: testimonialType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(testimonialInputType)},
				},
				Resolve: resolveUpdateTestimonial,
			},
			"deleteTestimonial": &graphql.Field{Type: graphql.Boolean, Args: idArg(), Resolve: resolveDeleteTestimonial},
			"createNews": &graphql.Field{
				Type: newsType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(newsInputType)},
				},
				Resolve: resolveCreateNews,
			},
			"updateNews": &graphql.Field{
				Type: newsType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(newsInputType)},
				},
				Resolve: resolveUpdateNews,
			},
			"deleteNews": &graphql.Field{Type: graphql.Boolean, Args: idArg(), Resolve: resolveDeleteNews},
			"createKpiRecord": &graphql.Field{
				Type: kpiRecordType,
				Args: graphql.FieldConfigArgument{
					"input":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(kpiRecordInputType)},
					"userId": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: resolveCreateKPIRecord,
			},
			"deleteKpiRecord": &graphql.Field{Type: graphql.Boolean, Args: idArg(), Resolve: resolveDeleteKPIRecord},
			"updateUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(userUpdateInputType)},
				},
				Resolve: resolveUpdateUser,
			},
			"deleteUser": &graphql.Field{Type: graphql.Boolean, Args: idArg(), Resolve: resolveDeleteUser},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
