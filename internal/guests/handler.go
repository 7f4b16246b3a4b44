package guests

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"eventmart/internal/auth"
)

type Handler struct {
	repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{repo: repo}
}

type createGuestReq struct {
	Name          string `json:"name" binding:"required"`
	ContactNumber string `json:"contact_number" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
}

func (h *Handler) Add(c *gin.Context) {
	var req createGuestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.repo.Create(c.Request.Context(), auth.CurrentUserID(c), req.Name, req.ContactNumber, req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add guest"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Guest added successfully"})
}

func (h *Handler) MyGuests(c *gin.Context) {
	out, err := h.repo.ListByUser(c.Request.Context(), auth.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list guests"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) Update(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("guest_id"), 10, 64)

	var p Patch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.repo.Update(c.Request.Context(), id, auth.CurrentUserID(c), p)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "guest not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update guest"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Guest updated successfully"})
}

func (h *Handler) Delete(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("guest_id"), 10, 64)

	err := h.repo.Delete(c.Request.Context(), id, auth.CurrentUserID(c))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "guest not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete guest"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Guest deleted successfully"})
}
