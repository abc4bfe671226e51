package controllers

import (
	"net/http"
	"strconv"

	"parcel-service/models"
	"parcel-service/services"

	"github.com/gin-gonic/gin"
)

// ParcelController handles HTTP requests for parcel CRUD and tracking.
type ParcelController struct {
	parcelService services.ParcelService
}

// NewParcelController creates a new ParcelController.
func NewParcelController(svc services.ParcelService) *ParcelController {
	return &ParcelController{parcelService: svc}
}

// CreateParcel handles POST /parcels
func (pc *ParcelController) CreateParcel(ctx *gin.Context) {
	var req models.CreateParcelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   services.KindInvalidRequest,
			"message": err.Error(),
		})
		return
	}

	parcel, svcErr := pc.parcelService.CreateParcel(ctx.Request.Context(), &req)
	if svcErr != nil {
		respondServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": parcel})
}

// ListParcels handles GET /parcels
func (pc *ParcelController) ListParcels(ctx *gin.Context) {
	page, limit := parsePaginationParams(ctx)
	email := ctx.Query("email")

	parcels, total, svcErr := pc.parcelService.ListParcels(ctx.Request.Context(), email, page, limit)
	if svcErr != nil {
		respondServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    parcels,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

// GetParcel handles GET /parcels/:id
func (pc *ParcelController) GetParcel(ctx *gin.Context) {
	parcel, svcErr := pc.parcelService.GetParcel(ctx.Request.Context(), ctx.Param("id"))
	if svcErr != nil {
		respondServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": parcel})
}

// DeleteParcel handles DELETE /parcels/:id
func (pc *ParcelController) DeleteParcel(ctx *gin.Context) {
	if svcErr := pc.parcelService.DeleteParcel(ctx.Request.Context(), ctx.Param("id")); svcErr != nil {
		respondServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// AddTracking handles POST /parcels/:id/tracking
func (pc *ParcelController) AddTracking(ctx *gin.Context) {
	var req models.AddTrackingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   services.KindInvalidRequest,
			"message": err.Error(),
		})
		return
	}

	entry, svcErr := pc.parcelService.AddTracking(ctx.Request.Context(), ctx.Param("id"), &req)
	if svcErr != nil {
		respondServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": entry})
}

// GetTracking handles GET /parcels/:id/tracking
func (pc *ParcelController) GetTracking(ctx *gin.Context) {
	entries, svcErr := pc.parcelService.GetTracking(ctx.Request.Context(), ctx.Param("id"))
	if svcErr != nil {
		respondServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": entries})
}

// parsePaginationParams extracts and validates page/limit query params.
func parsePaginationParams(ctx *gin.Context) (int, int) {
	const maxLimit = 100
	pageInt, limitInt := 1, 10
	if p, err := strconv.Atoi(ctx.DefaultQuery("page", "1")); err == nil && p > 0 {
		pageInt = p
	}
	if l, err := strconv.Atoi(ctx.DefaultQuery("limit", "10")); err == nil && l > 0 {
		if l > maxLimit {
			l = maxLimit
		}
		limitInt = l
	}
	return pageInt, limitInt
}
