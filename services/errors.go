package services

import "net/http"

// Machine-readable error kinds returned alongside HTTP status codes.
const (
	KindMissingField        = "MISSING_FIELD"
	KindGatewayUnreachable  = "GATEWAY_UNREACHABLE"
	KindPaymentNotSucceeded = "PAYMENT_NOT_SUCCEEDED"
	KindAmountMismatch      = "AMOUNT_MISMATCH"
	KindCurrencyMismatch    = "CURRENCY_MISMATCH"
	KindParcelNotFound      = "PARCEL_NOT_FOUND"
	KindStoreUnavailable    = "STORE_UNAVAILABLE"
	KindInvalidRequest      = "INVALID_REQUEST"
)

// ServiceError is a typed error carrying an HTTP status code and a
// machine-distinguishable kind.
type ServiceError struct {
	StatusCode int
	Kind       string
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

func errMissingField(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusBadRequest, Kind: KindMissingField, Message: msg}
}

func errGatewayUnreachable(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusInternalServerError, Kind: KindGatewayUnreachable, Message: msg}
}

func errPaymentNotSucceeded(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusBadRequest, Kind: KindPaymentNotSucceeded, Message: msg}
}

func errAmountMismatch(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusBadRequest, Kind: KindAmountMismatch, Message: msg}
}

func errCurrencyMismatch(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusBadRequest, Kind: KindCurrencyMismatch, Message: msg}
}

func errParcelNotFound(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusNotFound, Kind: KindParcelNotFound, Message: msg}
}

func errStoreUnavailable(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusInternalServerError, Kind: KindStoreUnavailable, Message: msg}
}
