package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/table-booking/models"
	"github.com/yeremiapane/table-booking/router"
	"github.com/yeremiapane/table-booking/services"
	"github.com/yeremiapane/table-booking/utils"
)

var fixedNow = time.Date(2030, 5, 10, 9, 0, 0, 0, time.UTC)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// setupTestRouter -> router dengan Restaurant kosong dan jam tetap
func setupTestRouter(t *testing.T) (*gin.Engine, *services.BookingService) {
	t.Helper()
	utils.InitLogger()
	gin.SetMode(gin.TestMode)

	r := models.NewRestaurant()
	r.Now = func() time.Time { return fixedNow }
	svc := services.NewBookingService(r, nil, nil)
	return router.SetupRouter(router.AppContext{Service: svc}), svc
}

func doRequest(t *testing.T, h http.Handler, method, url string, body interface{}) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp apiResponse
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}
