package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/table-booking/models"
	"github.com/yeremiapane/table-booking/services"
	"github.com/yeremiapane/table-booking/utils"
)

type TableController struct {
	Service *services.BookingService
}

func NewTableController(svc *services.BookingService) *TableController {
	return &TableController{Service: svc}
}

type tableRequest struct {
	Name  string `json:"name"`
	Seats int    `json:"seats"`
}

// GetAllTables -> menampilkan seluruh meja
func (tc *TableController) GetAllTables(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of tables", tc.Service.Tables())
}

// GetAvailableTables -> filter ?seats=&start=&end=
// Filter waktu hanya dipakai kalau start dan end sama-sama diisi.
func (tc *TableController) GetAvailableTables(c *gin.Context) {
	var q models.AvailabilityQuery

	if raw := c.Query("seats"); raw != "" {
		seats, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		q.Seats = seats
	}

	now := tc.Service.Now()
	if raw := c.Query("start"); raw != "" {
		t, err := utils.ParseBookingTime(raw, now)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		q.Start = t
	}
	if raw := c.Query("end"); raw != "" {
		t, err := utils.ParseBookingTime(raw, now)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		q.End = t
	}

	utils.RespondJSON(c, http.StatusOK, "Available tables", tc.Service.AvailableTables(q))
}

// GetTableByID -> detail satu meja
func (tc *TableController) GetTableByID(c *gin.Context) {
	id, ok := paramID(c, "table_id")
	if !ok {
		return
	}
	table, err := tc.Service.FindTable(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// CreateTable -> menambahkan meja baru
func (tc *TableController) CreateTable(c *gin.Context) {
	var req tableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Service.AddTable(req.Name, req.Seats)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// UpdateTable -> ganti nama dan jumlah kursi
func (tc *TableController) UpdateTable(c *gin.Context) {
	id, ok := paramID(c, "table_id")
	if !ok {
		return
	}
	var req tableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Service.UpdateTable(id, req.Name, req.Seats)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// DeleteTable -> menghapus meja (ditolak kalau sedang terisi)
func (tc *TableController) DeleteTable(c *gin.Context) {
	id, ok := paramID(c, "table_id")
	if !ok {
		return
	}
	if err := tc.Service.RemoveTable(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{"id": id})
}

// OccupyTable -> tamu walk-in
func (tc *TableController) OccupyTable(c *gin.Context) {
	id, ok := paramID(c, "table_id")
	if !ok {
		return
	}
	table, err := tc.Service.OccupyTable(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table occupied", table)
}

func (tc *TableController) ReleaseTable(c *gin.Context) {
	id, ok := paramID(c, "table_id")
	if !ok {
		return
	}
	table, err := tc.Service.ReleaseTable(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table released", table)
}
