package services

import (
	"testing"

	"templeconnect/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotalFreePlan(t *testing.T) {
	fees := ComputeTotal(101, false)

	assert.Equal(t, 40, fees.PlatformFee)
	assert.Equal(t, 30, fees.ProcessingFee)
	assert.Equal(t, 171, fees.Total)
}

func TestComputeTotalExempt(t *testing.T) {
	fees := ComputeTotal(499, true)

	assert.Equal(t, 0, fees.PlatformFee)
	assert.Equal(t, 0, fees.ProcessingFee)
	assert.Equal(t, 499, fees.Total)
}

func TestComputeTotalAddsFlatFees(t *testing.T) {
	for _, base := range []int{1, 51, 1001, 25000} {
		fees := ComputeTotal(base, false)
		assert.Equal(t, base+70, fees.Total, "base %d", base)
	}
}

func TestFeeExempt(t *testing.T) {
	// Premium plan holders pay no fees on anything.
	assert.True(t, FeeExempt(models.PlanPremium, models.BookingTypePooja))
	assert.True(t, FeeExempt("Premium", models.BookingTypeDonation))

	// Buying the subscription itself is fee-free regardless of plan.
	assert.True(t, FeeExempt(models.PlanFree, models.BookingTypeSubscription))

	assert.False(t, FeeExempt(models.PlanFree, models.BookingTypePooja))
	assert.False(t, FeeExempt(models.PlanFree, models.BookingTypeDonation))
	assert.False(t, FeeExempt("", models.BookingTypePooja))
}

func TestIsValidPlan(t *testing.T) {
	assert.True(t, IsValidPlan("free"))
	assert.True(t, IsValidPlan("Premium"))
	assert.False(t, IsValidPlan("team"))
	assert.False(t, IsValidPlan(""))
}
