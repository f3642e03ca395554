package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/table-booking/services"
	"github.com/yeremiapane/table-booking/utils"
)

const defaultJournalLimit = 50

type DashboardController struct {
	Service *services.BookingService
	Journal *services.Journal
}

func NewDashboardController(svc *services.BookingService, journal *services.Journal) *DashboardController {
	return &DashboardController{Service: svc, Journal: journal}
}

// GetDashboardStats -> jumlah meja total/terisi/kosong dan booking aktif
func (dc *DashboardController) GetDashboardStats(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", dc.Service.Stats())
}

// GetJournal -> entry audit terbaru, ?limit=
func (dc *DashboardController) GetJournal(c *gin.Context) {
	if dc.Journal == nil {
		utils.RespondError(c, http.StatusServiceUnavailable, ErrJournalDisabled)
		return
	}

	limit := defaultJournalLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			utils.RespondError(c, http.StatusBadRequest, ErrInvalidLimit)
			return
		}
		limit = n
	}

	entries, err := dc.Journal.Recent(limit)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Journal entries", entries)
}
