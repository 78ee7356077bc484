package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Rev0212/meeting/internal/models"
	"github.com/Rev0212/meeting/internal/service"
)

type BookingHandler struct{ svc service.BookingService }

func NewBookingHandler(s service.BookingService) *BookingHandler { return &BookingHandler{svc: s} }

type bookingIn struct {
	RoomID            string   `json:"room_id" binding:"required"` // hex
	Title             string   `json:"title" binding:"required"`
	Start             string   `json:"start_time" binding:"required"` // RFC3339
	End               string   `json:"end_time" binding:"required"`
	AttendeeCount     int      `json:"attendee_count" binding:"required,min=1"`
	RequiredEquipment []string `json:"required_equipment"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	u := c.MustGet("user").(*models.User)
	var in bookingIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON"}); return
	}
	start, err := time.Parse(time.RFC3339, in.Start)
	if err != nil { c.JSON(http.StatusBadRequest, gin.H{"error": "bad start_time"}); return }
	end, err := time.Parse(time.RFC3339, in.End)
	if err != nil { c.JSON(http.StatusBadRequest, gin.H{"error": "bad end_time"}); return }

	b, err := h.svc.CreateBooking(c.Request.Context(), service.CreateBookingInput{
		UserID:            u.ID,
		RoomID:            in.RoomID,
		Title:             in.Title,
		StartTime:         start,
		EndTime:           end,
		AttendeeCount:     in.AttendeeCount,
		RequiredEquipment: in.RequiredEquipment,
	})
	if err != nil { writeError(c, err); return }
	c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	u := c.MustGet("user").(*models.User)
	bid := c.Param("id") // hex booking id
	if bid == "" { c.JSON(http.StatusBadRequest, gin.H{"error": "bad id"}); return }
	b, err := h.svc.CancelBooking(c.Request.Context(), bid, u.ID)
	if err != nil { writeError(c, err); return }
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) ListByUser(c *gin.Context) {
	uid := c.Param("id")
	if uid == "" { c.JSON(http.StatusBadRequest, gin.H{"error": "bad id"}); return }
	bs, err := h.svc.BookingsByUser(c.Request.Context(), uid)
	if err != nil { writeError(c, err); return }
	if bs == nil { bs = []models.Booking{} }
	c.JSON(http.StatusOK, bs)
}

func (h *BookingHandler) ListByRoom(c *gin.Context) {
	rid := c.Param("id")
	if rid == "" { c.JSON(http.StatusBadRequest, gin.H{"error": "bad id"}); return }
	day, err := parseDay(c.Query("date"))
	if err != nil { c.JSON(http.StatusBadRequest, gin.H{"error": "bad date"}); return }
	bs, err := h.svc.BookingsByRoom(c.Request.Context(), rid, day)
	if err != nil { writeError(c, err); return }
	if bs == nil { bs = []models.Booking{} }
	c.JSON(http.StatusOK, bs)
}

func (h *BookingHandler) ListByDay(c *gin.Context) {
	day, err := parseDay(c.Query("date"))
	if err != nil { c.JSON(http.StatusBadRequest, gin.H{"error": "bad date"}); return }
	bs, err := h.svc.BookingsByDay(c.Request.Context(), day)
	if err != nil { writeError(c, err); return }
	if bs == nil { bs = []models.Booking{} }
	c.JSON(http.StatusOK, bs)
}
