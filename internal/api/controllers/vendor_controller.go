package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"marryday/internal/models/request_models"
	"marryday/internal/services"
	"marryday/pkg/utils"
)

type VendorController struct {
	vendorService services.VendorServiceInterface
}

func NewVendorController(vendorService services.VendorServiceInterface) *VendorController {
	return &VendorController{
		vendorService: vendorService,
	}
}

func (v *VendorController) ListVendors(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	vendors, err := v.vendorService.ListVendors(c.Request.Context(),
		c.Query("category"), c.Query("region"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, vendors, "")
}

func (v *VendorController) GetVendor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid vendor id")
		return
	}

	vendor, err := v.vendorService.GetVendor(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, vendor, "")
}

func (v *VendorController) SearchVendors(c *gin.Context) {
	var req request_models.VendorSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "query is required")
		return
	}

	vendors, err := v.vendorService.SearchVendors(c.Request.Context(), req.Query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, vendors, "")
}

// IndexVendor is the admin hook that refreshes a vendor's embedding
// after its description changes.
func (v *VendorController) IndexVendor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid vendor id")
		return
	}

	if err := v.vendorService.IndexVendor(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": true}, "Vendor indexed")
}
