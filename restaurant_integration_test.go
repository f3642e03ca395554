package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/table-booking/database"
	"github.com/yeremiapane/table-booking/kds"
	"github.com/yeremiapane/table-booking/models"
	"github.com/yeremiapane/table-booking/router"
	"github.com/yeremiapane/table-booking/services"
	"github.com/yeremiapane/table-booking/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// TestEndToEndIntegration menguji flow utama:
// 1. Tambah meja
// 2. Booking, lalu booking kedua yang bentrok ditolak
// 3. Cek availability
// 4. Cancel booking
// 5. Journal berisi semua event dan papan websocket menerima broadcast
func TestEndToEndIntegration(t *testing.T) {
	now := time.Now()
	db, err := database.Open("sqlite", "file:e2e?mode=memory&cache=shared")
	require.NoError(t, err)

	journal := services.NewJournal(db)
	hub := kds.NewBoardHub()
	restaurant := models.NewRestaurant()
	restaurant.Now = func() time.Time { return now }
	svc := services.NewBookingService(restaurant, journal, hub)

	srv := httptest.NewServer(router.SetupRouter(router.AppContext{
		Service: svc,
		Journal: journal,
		Hub:     hub,
	}))
	defer srv.Close()

	ws := dialBoard(t, srv.URL, hub)
	defer ws.Close()

	// 1. meja
	tableID := createTableTest(t, srv.URL)

	// 2. booking + bentrok
	start := now.Add(time.Hour).Format(models.SummaryTimeLayout)
	end := now.Add(2 * time.Hour).Format(models.SummaryTimeLayout)
	bookingID := createBookingTest(t, srv.URL, tableID, start, end, http.StatusCreated)
	innerStart := now.Add(90 * time.Minute).Format(models.SummaryTimeLayout)
	innerEnd := now.Add(105 * time.Minute).Format(models.SummaryTimeLayout)
	createBookingTest(t, srv.URL, tableID, innerStart, innerEnd, http.StatusConflict)

	// 3. availability
	assert.Equal(t, 0, countAvailable(t, srv.URL, start, end))
	later := now.Add(3 * time.Hour).Format(models.SummaryTimeLayout)
	assert.Equal(t, 1, countAvailable(t, srv.URL, end, later))

	// 4. cancel
	resp := postJSON(t, srv.URL+"/bookings/"+strconv.Itoa(bookingID)+"/cancel", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	assert.Equal(t, 1, countAvailable(t, srv.URL, start, end))

	// 5. journal + board
	require.NoError(t, journal.Flush())
	entries, err := journal.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, kds.EventBookingCancel, entries[0].Event)
	assert.Equal(t, kds.EventBookingCreate, entries[1].Event)
	assert.Equal(t, kds.EventTableCreate, entries[2].Event)

	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg kds.Message
	require.NoError(t, ws.ReadJSON(&msg))
	assert.Equal(t, kds.EventTableCreate, msg.Event)
}

func dialBoard(t *testing.T, baseURL string, hub *kds.BoardHub) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(baseURL, "http") + "/ws?role=host"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	// tunggu sampai hub mencatat client
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)
	return ws
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	resp, err := http.Post(url, "application/json", &buf)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) envelope {
	t.Helper()
	defer resp.Body.Close()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return env
}

func createTableTest(t *testing.T, baseURL string) int {
	resp := postJSON(t, baseURL+"/tables", map[string]interface{}{"name": "Center 1", "seats": 4})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var table models.TableSummary
	decode(t, resp, &table)
	return table.ID
}

func createBookingTest(t *testing.T, baseURL string, tableID int, start, end string, wantCode int) int {
	resp := postJSON(t, baseURL+"/bookings", map[string]interface{}{
		"guest_name": "A",
		"phone":      "+1000000000",
		"table_id":   tableID,
		"start_time": start,
		"end_time":   end,
	})
	require.Equal(t, wantCode, resp.StatusCode)
	if wantCode != http.StatusCreated {
		resp.Body.Close()
		return 0
	}
	var booking models.BookingSummary
	decode(t, resp, &booking)
	return booking.ID
}

func countAvailable(t *testing.T, baseURL, start, end string) int {
	q := "?seats=4&start=" + urlQuery(start) + "&end=" + urlQuery(end)
	resp, err := http.Get(baseURL + "/tables/available" + q)
	require.NoError(t, err)
	var tables []models.TableSummary
	decode(t, resp, &tables)
	return len(tables)
}

func urlQuery(s string) string {
	return strings.ReplaceAll(s, " ", "+")
}
