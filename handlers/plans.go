package handlers

import (
	"net/http"

	"templeconnect/models"
	"templeconnect/services"

	"github.com/gin-gonic/gin"
)

// ListPlans exposes the fee constants so the client can show totals before
// checkout.
func (h *Handler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, []models.PlanInfo{
		{Plan: models.PlanFree, PlatformFee: services.PlatformFee, ProcessingFee: services.ProcessingFee},
		{Plan: models.PlanPremium, PlatformFee: 0, ProcessingFee: 0},
	})
}

// DowngradePlan sets the authenticated user back to the free plan. The
// upgrade path runs through payment verification only.
func (h *Handler) DowngradePlan(c *gin.Context) {
	if !h.Features.BillingEnabled {
		c.JSON(http.StatusNotFound, gin.H{"error": "Billing not enabled"})
		return
	}

	userID, ok := userIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := h.Users.SetPlan(c.Request.Context(), userID, models.PlanFree); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Downgraded to free",
		"plan":    models.PlanFree,
	})
}
