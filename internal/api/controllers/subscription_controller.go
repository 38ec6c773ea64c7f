package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marryday/internal/models/db_models"
	"marryday/internal/models/request_models"
	"marryday/internal/services"
	"marryday/pkg/utils"
)

type SubscriptionController struct {
	entitlementService services.EntitlementServiceInterface
}

func NewSubscriptionController(entitlementService services.EntitlementServiceInterface) *SubscriptionController {
	return &SubscriptionController{
		entitlementService: entitlementService,
	}
}

// GetEntitlement returns the read model the client gates premium
// features on. The client refetches this after every mutation.
func (s *SubscriptionController) GetEntitlement(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	entitlement, err := s.entitlementService.GetEntitlement(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entitlement, "")
}

func (s *SubscriptionController) StartTrial(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := s.entitlementService.StartTrial(c.Request.Context(), accountID, nil); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": true}, "Trial started")
}

func (s *SubscriptionController) Subscribe(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req request_models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "plan must be monthly or yearly")
		return
	}

	err := s.entitlementService.Subscribe(c.Request.Context(), accountID,
		db_models.SubscriptionPlan(req.Plan), nil)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": true}, "Subscription updated")
}

func (s *SubscriptionController) Cancel(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := s.entitlementService.Cancel(c.Request.Context(), accountID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": true}, "Subscription cancelled")
}
