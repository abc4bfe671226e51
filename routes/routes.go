package routes

import (
	"net/http"

	"parcel-service/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires up all HTTP routes.
func RegisterRoutes(r *gin.Engine, parcelCtrl *controllers.ParcelController, paymentCtrl *controllers.PaymentController) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	parcels := r.Group("/parcels")
	parcels.POST("", parcelCtrl.CreateParcel)
	parcels.GET("", parcelCtrl.ListParcels)
	parcels.GET("/:id", parcelCtrl.GetParcel)
	parcels.DELETE("/:id", parcelCtrl.DeleteParcel)
	parcels.POST("/:id/tracking", parcelCtrl.AddTracking)
	parcels.GET("/:id/tracking", parcelCtrl.GetTracking)

	payments := r.Group("/payments")
	payments.POST("/create-intent", paymentCtrl.CreateIntent)
	payments.POST("/confirm", paymentCtrl.ConfirmPayment)
}
