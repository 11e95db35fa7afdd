package services

import (
	"strings"

	"templeconnect/models"
)

// Convenience fees in whole rupees, charged on top of the base amount for
// free-plan users. Premium holders and subscription purchases pay none.
const (
	PlatformFee   = 40
	ProcessingFee = 30
)

type FeeBreakdown struct {
	PlatformFee   int `json:"platformFee"`
	ProcessingFee int `json:"processingFee"`
	Total         int `json:"total"`
}

// ComputeTotal is pure: base is in whole rupees and must already be the
// caller's chosen amount. No rounding, no currency conversion.
func ComputeTotal(base int, feeExempt bool) FeeBreakdown {
	if feeExempt {
		return FeeBreakdown{Total: base}
	}
	return FeeBreakdown{
		PlatformFee:   PlatformFee,
		ProcessingFee: ProcessingFee,
		Total:         base + PlatformFee + ProcessingFee,
	}
}

// FeeExempt reports whether fees are waived: either the payer already holds
// the premium plan, or the transaction itself buys the subscription.
func FeeExempt(plan, bookingType string) bool {
	return strings.EqualFold(plan, models.PlanPremium) || bookingType == models.BookingTypeSubscription
}

func IsValidPlan(plan string) bool {
	p := strings.ToLower(plan)
	return p == models.PlanFree || p == models.PlanPremium
}
