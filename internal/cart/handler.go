package cart

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

type AddItemReq struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,gt=0"`
}

func (h *Handler) AddItem(c *gin.Context) {
	var req AddItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.repo.AddItem(c.Request.Context(), auth.CurrentUserID(c), req.ProductID, req.Quantity)
	if errors.Is(err, ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product added/updated in cart"})
}

type UpdateQtyReq struct {
	CartItemID int64 `json:"cart_item_id" binding:"required"`
	Quantity   *int  `json:"quantity" binding:"required"`
}

// Quantity zero (or below) removes the line instead of persisting it.
func (h *Handler) UpdateQty(c *gin.Context) {
	var req UpdateQtyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.repo.UpdateQty(c.Request.Context(), auth.CurrentUserID(c), req.CartItemID, *req.Quantity)
	if errors.Is(err, ErrItemNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update quantity"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quantity updated"})
}

func (h *Handler) RemoveItem(c *gin.Context) {
	itemID, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	err := h.repo.RemoveItem(c.Request.Context(), auth.CurrentUserID(c), itemID)
	if errors.Is(err, ErrItemNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found in your cart"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
}

func (h *Handler) MyCart(c *gin.Context) {
	crt, err := h.repo.GetCart(c.Request.Context(), auth.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, crt)
}
