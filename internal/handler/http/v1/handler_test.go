package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rescue365/rescue_dispatch_system/internal/config"
	"github.com/rescue365/rescue_dispatch_system/internal/errs"
	"github.com/rescue365/rescue_dispatch_system/internal/geo"
	payment_mocks "github.com/rescue365/rescue_dispatch_system/internal/handler/http/v1/mocks"
	"github.com/rescue365/rescue_dispatch_system/internal/models"
	"github.com/rescue365/rescue_dispatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler builds a Handler with mocked services and a wired-up router
func newTestHandler(t *testing.T) (*Handler, *mocks.MockReportService, *mocks.MockProfileService, *payment_mocks.MockPayments, *gin.Engine) {
	ctrl := gomock.NewController(t)
	reportMock := mocks.NewMockReportService(ctrl)
	profileMock := mocks.NewMockProfileService(ctrl)
	paymentsMock := payment_mocks.NewMockPayments(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Silence logs in tests

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(reportMock, profileMock, paymentsMock, logger, cfg)

	// Same route layout as main: system routes open, the API group behind
	// the key and identity middlewares, payment relay at the root
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterSystemRoutes(api)
	api.Use(APIKeyAuthMiddleware(cfg, logger), IdentityMiddleware(logger))
	handler.RegisterRoutes(api)
	handler.RegisterPaymentRoutes(router)

	return handler, reportMock, profileMock, paymentsMock, router
}

// makeRequest is a helper for running HTTP requests against the test router
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// authHeaders returns the API key plus the trusted identity headers
func authHeaders(userID string, role models.Role) map[string]string {
	return map[string]string{
		"X-API-Key":   "test-api-key",
		"X-User-Id":   userID,
		"X-User-Role": string(role),
	}
}

func TestCreateReport_Success(t *testing.T) {
	_, reportMock, _, _, router := newTestHandler(t)
	reportID := uuid.New()
	reqBody := CreateReportRequest{
		AnimalType:  "dog",
		Severity:    "Severe",
		Description: "Injured dog by the road",
		Latitude:    42.36,
		Longitude:   -71.06,
		ImageURL:    "https://storage.example.com/photos/dog.jpg",
	}

	reportMock.EXPECT().
		CreateReport(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, actor models.Actor, report *models.RescueReport) error {
			assert.Equal(t, "user-1", actor.ID)
			report.ID = reportID
			report.Status = models.StatusPending
			report.ReporterID = actor.ID
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes), authHeaders("user-1", models.RoleBystander))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp ReportResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, reportID, resp.ID)
	assert.Equal(t, string(models.StatusPending), resp.Status)
	assert.Equal(t, "user-1", resp.ReporterID)
}

func TestCreateReport_InvalidJSON(t *testing.T) {
	_, reportMock, _, _, router := newTestHandler(t)

	reportMock.EXPECT().CreateReport(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBufferString(`{"animal_type": "dog"`), authHeaders("user-1", models.RoleBystander))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateReport_ValidationError(t *testing.T) {
	_, reportMock, _, _, router := newTestHandler(t)
	reqBody := CreateReportRequest{ // ImageURL missing
		AnimalType:  "dog",
		Severity:    "Severe",
		Description: "Injured dog by the road",
		Latitude:    42.36,
		Longitude:   -71.06,
	}

	reportMock.EXPECT().CreateReport(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes), authHeaders("user-1", models.RoleBystander))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'ImageURL' failed on the 'required' tag")
}

func TestCreateReport_MissingIdentity(t *testing.T) {
	_, reportMock, _, _, router := newTestHandler(t)

	reportMock.EXPECT().CreateReport(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBufferString(`{}`), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "user identity required")
}

func TestListReports_RescuerWithLocation(t *testing.T) {
	_, reportMock, _, _, router := newTestHandler(t)
	expected := []*models.RescueReport{
		{ID: uuid.New(), Status: models.StatusPending, Description: "Injured dog"},
	}

	reportMock.EXPECT().
		VisibleReports(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, actor models.Actor, loc *geo.Coordinate) ([]*models.RescueReport, error) {
			assert.Equal(t, models.RoleRescuer, actor.Role)
			require.NotNil(t, loc)
			return expected, nil
		}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports?lat=42.36&lng=-71.06", nil, authHeaders("rescuer-1", models.RoleRescuer))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []ReportResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, expected[0].ID, resp[0].ID)
}

func TestListReports_RescuerWithoutLocation(t *testing.T) {
	_, reportMock, _, _, router := newTestHandler(t)

	reportMock.EXPECT().
		VisibleReports(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(nil, fmt.Errorf("%w: location is required for the rescuer view", errs.ErrValidation)).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports", nil, authHeaders("rescuer-1", models.RoleRescuer))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "location is required")
}

func TestGetReport_Success(t *testing.T) {
	_, reportMock, _, _, router := newTestHandler(t)
	reportID := uuid.New()
	expected := &models.RescueReport{
		ID:          reportID,
		AnimalType:  models.AnimalCat,
		Severity:    models.SeverityModerate,
		Description: "Cat stuck on a roof",
		Status:      models.StatusPending,
	}

	reportMock.EXPECT().GetReport(gomock.Any(), reportID).Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/reports/%s", reportID.String()), nil, authHeaders("user-1", models.RoleBystander))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ReportResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, reportID, resp.ID)
	assert.Equal(t, expected.Description, resp.Description)
}

func TestGetReport_InvalidID(t *testing.T) {
	_, reportMock, _, _, router := newTestHandler(t)

	reportMock.EXPECT().GetReport(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/reports/invalid-uuid", nil, authHeaders("user-1", models.RoleBystander))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid report ID")
}

func TestGetReport_NotFound(t *testing.T) {
	_, reportMock, _, _, router := newTestHandler(t)
	reportID := uuid.New()

	reportMock.EXPECT().
		GetReport(gomock.Any(), reportID).
		Return(nil, fmt.Errorf("service: %w", errs.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/reports/%s", reportID.String()), nil, authHeaders("user-1", models.RoleBystander))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "report not found")
}

func TestAcceptReport_Success(t *testing.T) {
	_, reportMock, _, _, router := newTestHandler(t)
	reportID := uuid.New()

	reportMock.EXPECT().
		Accept(gomock.Any(), gomock.Any(), reportID).
		DoAndReturn(func(_ context.Context, actor models.Actor, _ uuid.UUID) error {
			assert.Equal(t, "rescuer-1", actor.ID)
			return nil
		}).Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/reports/%s/accept", reportID.String()), nil, authHeaders("rescuer-1", models.RoleRescuer))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAcceptReport_AlreadyClaimed(t *testing.T) {
	_, reportMock, _, _, router := newTestHandler(t)
	reportID := uuid.New()

	reportMock.EXPECT().
		Accept(gomock.Any(), gomock.Any(), reportID).
		Return(fmt.Errorf("service: %w", errs.ErrAlreadyAssigned)).
		Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/reports/%s/accept", reportID.String()), nil, authHeaders("rescuer-2", models.RoleRescuer))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "someone else already claimed this rescue")
}

func TestAcceptReport_OwnReport(t *testing.T) {
	_, reportMock, _, _, router := newTestHandler(t)
	reportID := uuid.New()

	reportMock.EXPECT().
		Accept(gomock.Any(), gomock.Any(), reportID).
		Return(fmt.Errorf("service: %w", errs.ErrSelfReport)).
		Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/reports/%s/accept", reportID.String()), nil, authHeaders("rescuer-1", models.RoleRescuer))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "you cannot claim your own report")
}

func TestUnassignReport_NotAssignee(t *testing.T) {
	_, reportMock, _, _, router := newTestHandler(t)
	reportID := uuid.New()

	reportMock.EXPECT().
		Unassign(gomock.Any(), gomock.Any(), reportID).
		Return(fmt.Errorf("service: %w", errs.ErrUnauthorized)).
		Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/reports/%s/unassign", reportID.String()), nil, authHeaders("rescuer-2", models.RoleRescuer))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "you may not modify this report")
}

func TestUpdateStatus_Success(t *testing.T) {
	_, reportMock, _, _, router := newTestHandler(t)
	reportID := uuid.New()
	reqBody := UpdateStatusRequest{Status: string(models.StatusInProgress)}

	reportMock.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), reportID, models.StatusInProgress, gomock.Nil()).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/reports/%s/status", reportID.String()), bytes.NewBuffer(bodyBytes), authHeaders("rescuer-1", models.RoleRescuer))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	_, reportMock, _, _, router := newTestHandler(t)
	reportID := uuid.New()
	reqBody := UpdateStatusRequest{Status: string(models.StatusComplete)}

	reportMock.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), reportID, models.StatusComplete, gomock.Nil()).
		Return(fmt.Errorf("service: %w: rescuer may not move %q to %q", errs.ErrInvalidTransition, models.StatusPending, models.StatusComplete)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/reports/%s/status", reportID.String()), bytes.NewBuffer(bodyBytes), authHeaders("rescuer-1", models.RoleRescuer))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRecordDonation_Success(t *testing.T) {
	_, reportMock, _, _, router := newTestHandler(t)
	reportID := uuid.New()
	reqBody := DonationRequest{Amount: 25}

	reportMock.EXPECT().
		RecordDonation(gomock.Any(), gomock.Any(), reportID, 25.0).
		Return(125.0, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/reports/%s/donations", reportID.String()), bytes.NewBuffer(bodyBytes), authHeaders("donor-1", models.RoleDonor))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp DonationResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 125.0, resp.DonationsReceived)
}

func TestRecordDonation_NonPositiveAmount(t *testing.T) {
	_, reportMock, _, _, router := newTestHandler(t)
	reportID := uuid.New()

	reportMock.EXPECT().RecordDonation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/reports/%s/donations", reportID.String()), bytes.NewBufferString(`{"amount": -5}`), authHeaders("donor-1", models.RoleDonor))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Amount' failed on the 'gt' tag")
}

func TestPostStatusUpdate_Success(t *testing.T) {
	_, reportMock, _, _, router := newTestHandler(t)
	reportID := uuid.New()
	reqBody := StatusUpdateRequest{Message: "Dog secured, heading to the clinic"}

	reportMock.EXPECT().
		AddStatusUpdate(gomock.Any(), gomock.Any(), reportID, reqBody.Message).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/reports/%s/updates", reportID.String()), bytes.NewBuffer(bodyBytes), authHeaders("rescuer-1", models.RoleRescuer))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestListStatusUpdates_Success(t *testing.T) {
	_, reportMock, _, _, router := newTestHandler(t)
	reportID := uuid.New()
	expected := []*models.StatusUpdate{
		{ID: uuid.New(), ReportID: reportID, RescuerID: "rescuer-1", Message: "On my way"},
	}

	reportMock.EXPECT().ListStatusUpdates(gomock.Any(), reportID).Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/reports/%s/updates", reportID.String()), nil, authHeaders("user-1", models.RoleBystander))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []StatusUpdateResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, expected[0].Message, resp[0].Message)
}

func TestSaveRescuerProfile_Success(t *testing.T) {
	_, _, profileMock, _, router := newTestHandler(t)
	reqBody := RescuerProfileRequest{
		Name:  "Jordan Reyes",
		Phone: "+1-555-0100",
	}

	profileMock.EXPECT().
		SaveRescuerProfile(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, actor models.Actor, profile *models.RescuerProfile) error {
			assert.Equal(t, "rescuer-1", actor.ID)
			assert.Equal(t, reqBody.Name, profile.Name)
			profile.UserID = actor.ID
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/rescuers/me", bytes.NewBuffer(bodyBytes), authHeaders("rescuer-1", models.RoleRescuer))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp RescuerProfileResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "rescuer-1", resp.UserID)
	assert.Equal(t, reqBody.Name, resp.Name)
}

func TestSaveRescuerProfile_ValidationError(t *testing.T) {
	_, _, profileMock, _, router := newTestHandler(t)

	profileMock.EXPECT().SaveRescuerProfile(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PUT", "/api/v1/rescuers/me", bytes.NewBufferString(`{"name": "J"}`), authHeaders("rescuer-1", models.RoleRescuer))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterDevice_Success(t *testing.T) {
	_, _, profileMock, _, router := newTestHandler(t)
	reqBody := DeviceTokenRequest{PushToken: "ExponentPushToken[abc123]"}

	profileMock.EXPECT().
		RegisterDeviceToken(gomock.Any(), "user-1", reqBody.PushToken).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/devices", bytes.NewBuffer(bodyBytes), authHeaders("user-1", models.RoleBystander))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCreatePayPalOrder_Success(t *testing.T) {
	_, _, _, paymentsMock, router := newTestHandler(t)

	paymentsMock.EXPECT().
		CreateOrder(gomock.Any(), "25.00").
		Return("https://www.sandbox.paypal.com/checkoutnow?token=ORDER-1", nil).
		Times(1)

	// Relay endpoints sit outside the API-key group
	w := makeRequest(router, "POST", "/create-paypal-order", bytes.NewBufferString(`{"amount": "25.00"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp CreateOrderResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp.ApprovalURL, "checkoutnow")
}

func TestCreatePayPalOrder_UpstreamFailure(t *testing.T) {
	_, _, _, paymentsMock, router := newTestHandler(t)

	paymentsMock.EXPECT().
		CreateOrder(gomock.Any(), "25.00").
		Return("", fmt.Errorf("%w: processor returned 500", errs.ErrUpstream)).
		Times(1)

	w := makeRequest(router, "POST", "/create-paypal-order", bytes.NewBufferString(`{"amount": "25.00"}`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to create PayPal order")
}

func TestCapturePayPalOrder_Success(t *testing.T) {
	_, _, _, paymentsMock, router := newTestHandler(t)

	paymentsMock.EXPECT().
		CaptureOrder(gomock.Any(), "ORDER-1").
		Return("COMPLETED", nil).
		Times(1)

	w := makeRequest(router, "POST", "/capture-paypal-order", bytes.NewBufferString(`{"orderID": "ORDER-1"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp CaptureOrderResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", resp.Status)
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, _, _, router := newTestHandler(t)

	// No API key needed for the health probe
	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil) // No API key at all
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_BearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIdentityMiddleware_UnknownRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	router.Use(IdentityMiddleware(logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{
		"X-User-Id":   "user-1",
		"X-User-Role": "admin",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown role")
}

func TestIdentityMiddleware_DefaultsToBystander(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	router.Use(IdentityMiddleware(logger))
	router.GET("/test", func(c *gin.Context) {
		actor := actorFromContext(c)
		c.JSON(http.StatusOK, gin.H{"role": string(actor.Role)})
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-User-Id": "user-1"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), string(models.RoleBystander))
}
