package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Rev0212/meeting/internal/service"
)

// rejectionStatus maps a service rejection to an HTTP status and a
// machine-readable code. Unknown errors get (0, "") and are treated as
// storage failures by writeError.
func rejectionStatus(err error) (int, string) {
	var capErr *service.CapacityError
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound, "USER_NOT_FOUND"
	case errors.Is(err, service.ErrRoomNotFound):
		return http.StatusNotFound, "ROOM_NOT_FOUND"
	case errors.Is(err, service.ErrBookingNotFound):
		return http.StatusNotFound, "BOOKING_NOT_FOUND"
	case errors.Is(err, service.ErrPastTimeSlot):
		return http.StatusBadRequest, "PAST_TIME_SLOT"
	case errors.Is(err, service.ErrInvalidDuration):
		return http.StatusBadRequest, "INVALID_DURATION"
	case errors.Is(err, service.ErrOutsideBusinessHours):
		return http.StatusBadRequest, "OUTSIDE_BUSINESS_HOURS"
	case errors.Is(err, service.ErrNotSameDay):
		return http.StatusBadRequest, "NOT_SAME_DAY"
	case errors.As(err, &capErr):
		return http.StatusBadRequest, "CAPACITY_EXCEEDED"
	case errors.Is(err, service.ErrSlotConflict):
		return http.StatusConflict, "SLOT_CONFLICT"
	case errors.Is(err, service.ErrNotOwner):
		return http.StatusForbidden, "NOT_OWNER"
	case errors.Is(err, service.ErrInvalidRoom):
		return http.StatusBadRequest, "INVALID_ROOM"
	}
	return 0, ""
}

func writeError(c *gin.Context, err error) {
	if status, code := rejectionStatus(err); status != 0 {
		c.JSON(status, gin.H{"error": err.Error(), "code": code})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// parseDay reads a ?date=YYYY-MM-DD query value; empty means today.
func parseDay(s string) (time.Time, error) {
	if s == "" { return time.Now(), nil }
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
