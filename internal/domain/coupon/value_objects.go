package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrAmbiguousDiscount      = errors.New("discount must be either a fixed amount or a percentage")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

func NewCouponCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Discount struct {
	amountOffCents *int64
	percentOff     *float64
}

func NewDiscount(amountOffCents *int32, percentOff *float64) (Discount, error) {
	if (amountOffCents != nil) == (percentOff != nil) {
		return Discount{}, ErrAmbiguousDiscount
	}

	if amountOffCents != nil {
		if *amountOffCents < 0 {
			return Discount{}, ErrInvalidDiscountAmount
		}
		amount := int64(*amountOffCents)
		return Discount{amountOffCents: &amount}, nil
	}

	if *percentOff < 0 || *percentOff > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{percentOff: percentOff}, nil
}

func (d Discount) IsPercentage() bool {
	return d.percentOff != nil
}

// Apply subtracts a fixed amount or takes a percentage off, never going
// below zero.
func (d Discount) Apply(baseCents int64) int64 {
	result := baseCents
	if d.amountOffCents != nil {
		result -= *d.amountOffCents
	}
	if d.percentOff != nil {
		result = int64(float64(result) * (100.0 - *d.percentOff) / 100.0)
	}
	if result < 0 {
		result = 0
	}
	return result
}

func (d Discount) AmountOffCents() int64 {
	if d.amountOffCents != nil {
		return *d.amountOffCents
	}
	return 0
}

func (d Discount) PercentOff() float64 {
	if d.percentOff != nil {
		return *d.percentOff
	}
	return 0
}
