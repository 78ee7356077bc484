package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Rev0212/meeting/internal/models"
	"github.com/Rev0212/meeting/internal/service"
)

type RoomHandler struct {
	svc    service.BookingService
	search service.SearchService
}

func NewRoomHandler(s service.BookingService, search service.SearchService) *RoomHandler {
	return &RoomHandler{svc: s, search: search}
}

type roomIn struct {
	Name      string   `json:"name" binding:"required"`
	Capacity  int      `json:"capacity" binding:"required,min=1"`
	Equipment []string `json:"equipment"`
	IsActive  *bool    `json:"is_active"`
	Location  string   `json:"location"`
}

func (h *RoomHandler) Create(c *gin.Context) {
	var in roomIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON"}); return
	}
	id, err := h.svc.CreateRoom(c.Request.Context(), &models.Room{
		Name: in.Name, Capacity: in.Capacity, Equipment: in.Equipment, Location: in.Location,
	})
	if err != nil { writeError(c, err); return }
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *RoomHandler) Update(c *gin.Context) {
	var in roomIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON"}); return
	}
	id := c.Param("id")
	if id == "" { c.JSON(http.StatusBadRequest, gin.H{"error": "bad id"}); return }
	active := true
	if in.IsActive != nil { active = *in.IsActive }
	err := h.svc.UpdateRoom(c.Request.Context(), id, &models.Room{
		Name: in.Name, Capacity: in.Capacity, Equipment: in.Equipment, IsActive: active, Location: in.Location,
	})
	if err != nil { writeError(c, err); return }
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *RoomHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" { c.JSON(http.StatusBadRequest, gin.H{"error": "bad id"}); return }
	room, err := h.svc.GetRoom(c.Request.Context(), id)
	if err != nil { writeError(c, err); return }
	c.JSON(http.StatusOK, room)
}

func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.svc.ListRooms(c.Request.Context())
	if err != nil { writeError(c, err); return }
	if rooms == nil { rooms = []models.Room{} }
	c.JSON(http.StatusOK, rooms)
}

// Available lists rooms free for a window: ?start=RFC3339&end=RFC3339&min_capacity=N.
func (h *RoomHandler) Available(c *gin.Context) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil { c.JSON(http.StatusBadRequest, gin.H{"error": "bad start"}); return }
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil || !end.After(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad end"}); return
	}
	minCap := 1
	if v := c.Query("min_capacity"); v != "" {
		if n, err := strconv.Atoi(v); err == nil { minCap = n }
	}
	rooms, err := h.search.FindAvailable(c.Request.Context(), minCap, start, end)
	if err != nil { writeError(c, err); return }
	if rooms == nil { rooms = []models.Room{} }
	c.JSON(http.StatusOK, rooms)
}
