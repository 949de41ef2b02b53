// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"spendwise/internal/models"
)

const isoDateLayout = "2006-01-02"

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom tags on v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("nonnegative_amount", validateNonNegativeAmount)
	_ = v.RegisterValidation("max_amount", validateMaxAmount)
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(isoDateLayout, fl.Field().String())
	return err == nil
}

func validatePositiveAmount(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	return ok && d.IsPositive()
}

func validateNonNegativeAmount(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	return ok && !d.IsNegative()
}

// validateMaxAmount rejects amounts that do not fit an amount column once
// rounded to cents.
func validateMaxAmount(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	if !ok {
		return false
	}
	_, ok = models.NormalizeAmount(d)
	return ok
}

// decimalField accepts decimal.Decimal and models.Amount fields, by value or
// by pointer.
func decimalField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	switch v := fl.Field().Interface().(type) {
	case decimal.Decimal:
		return v, true
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero, false
		}
		return *v, true
	case models.Amount:
		return v.Decimal, true
	case *models.Amount:
		if v == nil {
			return decimal.Zero, false
		}
		return v.Decimal, true
	}
	return decimal.Zero, false
}
