package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/table-booking/models"
	"github.com/yeremiapane/table-booking/services"
	"github.com/yeremiapane/table-booking/utils"
)

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

var (
	ErrInvalidPhone    = &CustomError{"Enter valid phone number"}
	ErrInvalidID       = &CustomError{"Invalid id"}
	ErrInvalidLimit    = &CustomError{"Invalid limit"}
	ErrIncompleteTimes = &CustomError{"Both start_time and end_time are required"}
	ErrJournalDisabled = &CustomError{"Journal is not configured"}
	ErrNotPossible     = &CustomError{"Operation not possible"}
)

// respondServiceError -> ValidationError 400, not found 404, sisanya 409
func respondServiceError(c *gin.Context, err error) {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.RespondError(c, http.StatusBadRequest, vErr)
	case errors.Is(err, services.ErrTableNotFound), errors.Is(err, services.ErrBookingNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, services.ErrTableUnavailable),
		errors.Is(err, services.ErrTableNotOccupied),
		errors.Is(err, services.ErrBookingInactive):
		utils.RespondError(c, http.StatusConflict, err)
	default:
		utils.ErrorLogger.Printf("Unexpected error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, ErrNotPossible)
	}
}

// paramID membaca path param numerik; kalau gagal langsung respon 400
func paramID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidID)
		return 0, false
	}
	return id, true
}
