package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"parcel-service/controllers"
	"parcel-service/models"
	"parcel-service/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// ---- concrete mock implementing services.PaymentService ----

type mockPaymentSvc struct {
	intent     *services.IntentResult
	intentErr  *services.ServiceError
	parcel     *models.Parcel
	confirmErr *services.ServiceError

	lastConfirm *models.ConfirmPaymentRequest
}

func (m *mockPaymentSvc) CreateIntent(ctx context.Context, req *models.CreateIntentRequest) (*services.IntentResult, *services.ServiceError) {
	if m.intentErr != nil {
		return nil, m.intentErr
	}
	return m.intent, nil
}

func (m *mockPaymentSvc) ConfirmPayment(ctx context.Context, req *models.ConfirmPaymentRequest) (*models.Parcel, *services.ServiceError) {
	m.lastConfirm = req
	if m.confirmErr != nil {
		return nil, m.confirmErr
	}
	return m.parcel, nil
}

func setupPaymentRouter(svc services.PaymentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	c := controllers.NewPaymentController(svc)
	r.POST("/payments/create-intent", c.CreateIntent)
	r.POST("/payments/confirm", c.ConfirmPayment)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ---- tests ----

func TestConfirmPayment_OK(t *testing.T) {
	svc := &mockPaymentSvc{
		parcel: &models.Parcel{ID: "P1", PaymentStatus: models.PaymentStatusPaid},
	}
	r := setupPaymentRouter(svc)

	w := postJSON(t, r, "/payments/confirm", models.ConfirmPaymentRequest{
		ParcelID: "P1", PaymentIntentID: "pi_123",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, true, resp["success"])
	data, ok := resp["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "Paid", data["paymentStatus"])
	assert.Equal(t, "pi_123", svc.lastConfirm.PaymentIntentID)
}

func TestConfirmPayment_MissingField(t *testing.T) {
	svc := &mockPaymentSvc{
		confirmErr: &services.ServiceError{
			StatusCode: http.StatusBadRequest,
			Kind:       services.KindMissingField,
			Message:    "parcelId and paymentIntentId are required",
		},
	}
	r := setupPaymentRouter(svc)

	w := postJSON(t, r, "/payments/confirm", map[string]string{"parcelId": "P1"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, services.KindMissingField, resp["error"])
}

func TestConfirmPayment_NotFound(t *testing.T) {
	svc := &mockPaymentSvc{
		confirmErr: &services.ServiceError{
			StatusCode: http.StatusNotFound,
			Kind:       services.KindParcelNotFound,
			Message:    "No parcel found for id ghost",
		},
	}
	r := setupPaymentRouter(svc)

	w := postJSON(t, r, "/payments/confirm", models.ConfirmPaymentRequest{
		ParcelID: "ghost", PaymentIntentID: "pi_123",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, services.KindParcelNotFound, resp["error"])
}

func TestConfirmPayment_MalformedBody(t *testing.T) {
	r := setupPaymentRouter(&mockPaymentSvc{})

	req := httptest.NewRequest(http.MethodPost, "/payments/confirm", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateIntent_OK(t *testing.T) {
	svc := &mockPaymentSvc{
		intent: &services.IntentResult{PaymentIntentID: "pi_123", ClientSecret: "secret"},
	}
	r := setupPaymentRouter(svc)

	w := postJSON(t, r, "/payments/create-intent", models.CreateIntentRequest{
		ParcelID: "P1", Amount: 1500, Currency: "usd",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	data, _ := resp["data"].(map[string]interface{})
	assert.Equal(t, "pi_123", data["paymentIntentId"])
}

func TestCreateIntent_ValidationError(t *testing.T) {
	r := setupPaymentRouter(&mockPaymentSvc{})

	// Amount below minimum fails binding before the service is reached.
	w := postJSON(t, r, "/payments/create-intent", map[string]interface{}{
		"parcelId": "P1", "amount": 0, "currency": "usd",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
