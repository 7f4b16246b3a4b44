package orders

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eventmart/internal/auth"
	"eventmart/internal/mail"
)

type Handler struct {
	repo   *Repo
	mailer mail.Mailer
	log    *zap.Logger
}

func NewHandler(repo *Repo, mailer mail.Mailer, log *zap.Logger) *Handler {
	return &Handler{repo: repo, mailer: mailer, log: log}
}

type CheckoutReq struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Address       string `json:"address" binding:"required"`
	City          string `json:"city" binding:"required"`
	State         string `json:"state" binding:"required"`
	Pincode       string `json:"pincode" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}

func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := auth.CurrentUserID(c)
	orderID, err := h.repo.Checkout(c.Request.Context(), userID, CheckoutInput{
		Name:          req.Name,
		Email:         req.Email,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Pincode:       req.Pincode,
		Phone:         req.Phone,
		PaymentMethod: req.PaymentMethod,
	})

	var stockErr *InsufficientStockError
	switch {
	case errors.Is(err, ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	case errors.Is(err, ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	case errors.As(err, &stockErr):
		c.JSON(http.StatusConflict, gin.H{"error": stockErr.Error()})
		return
	case err != nil:
		h.log.Error("checkout failed", zap.Int64("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "checkout failed"})
		return
	}

	// Confirmation mail is best-effort; the order is already committed.
	go h.sendConfirmation(req.Email, req.Name, orderID)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Order placed successfully",
		"order_id": orderID,
	})
}

func (h *Handler) sendConfirmation(to, name string, orderID int64) {
	body := fmt.Sprintf("Hi %s,\n\nYour order #%d has been placed and is now pending.\n\nThank you for shopping with us.", name, orderID)
	if err := h.mailer.Send(to, fmt.Sprintf("Order #%d confirmed", orderID), body); err != nil {
		h.log.Warn("order confirmation mail failed", zap.Int64("order_id", orderID), zap.Error(err))
	}
}

func (h *Handler) MyOrders(c *gin.Context) {
	out, err := h.repo.MyOrders(c.Request.Context(), auth.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) VendorTransactions(c *gin.Context) {
	out, err := h.repo.VendorTransactions(c.Request.Context(), auth.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list transactions"})
		return
	}
	c.JSON(http.StatusOK, out)
}

type updateStatusReq struct {
	NewStatus string `json:"new_status" binding:"required"`
}

func (h *Handler) UpdateShippingStatus(c *gin.Context) {
	itemID, _ := strconv.ParseInt(c.Param("order_item_id"), 10, 64)

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		// Also accepted as ?new_status= for older clients.
		req.NewStatus = c.Query("new_status")
		if req.NewStatus == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
	}

	err := h.repo.UpdateShippingStatus(c.Request.Context(), itemID, auth.CurrentUserID(c), req.NewStatus)
	switch {
	case errors.Is(err, ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
	case errors.Is(err, ErrOrderItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order item not found"})
	case errors.Is(err, ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Shipping status updated successfully"})
	}
}
