package admin

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"eventmart/internal/auth"
	"eventmart/internal/domain/user"
	"eventmart/internal/memberships"
	"eventmart/internal/orders"
)

// Handler bundles the admin surface: membership management, user and
// vendor administration, and order reporting.
type Handler struct {
	users       *auth.UserRepo
	memberships *memberships.Repo
	orders      *orders.Repo
}

func NewHandler(users *auth.UserRepo, ms *memberships.Repo, ord *orders.Repo) *Handler {
	return &Handler{users: users, memberships: ms, orders: ord}
}

type createMembershipReq struct {
	UserID   int64  `json:"user_id" binding:"required"`
	Duration string `json:"duration" binding:"required"`
}

func (h *Handler) CreateMembership(c *gin.Context) {
	var req createMembershipReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.users.ByID(c.Request.Context(), req.UserID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	_, err := h.memberships.Create(c.Request.Context(), req.UserID, req.Duration)
	if errors.Is(err, memberships.ErrInvalidDuration) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid duration"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create membership"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Membership created successfully"})
}

type extendMembershipReq struct {
	MembershipID int64 `json:"membership_id" binding:"required"`
	Months       int   `json:"months"`
}

func (h *Handler) ExtendMembership(c *gin.Context) {
	var req extendMembershipReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Months <= 0 {
		req.Months = 6
	}

	err := h.memberships.Extend(c.Request.Context(), req.MembershipID, req.Months)
	switch {
	case errors.Is(err, memberships.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "membership not found"})
	case errors.Is(err, memberships.ErrCancelled):
		c.JSON(http.StatusConflict, gin.H{"error": "cannot extend a cancelled membership"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to extend membership"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Membership extended successfully"})
	}
}

type cancelMembershipReq struct {
	MembershipID int64 `json:"membership_id" binding:"required"`
}

func (h *Handler) CancelMembership(c *gin.Context) {
	var req cancelMembershipReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.memberships.Cancel(c.Request.Context(), req.MembershipID)
	if errors.Is(err, memberships.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "membership not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel membership"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Membership cancelled successfully"})
}

func (h *Handler) ListMemberships(c *gin.Context) {
	out, err := h.memberships.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list memberships"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) ListUsers(c *gin.Context) {
	h.listByRole(c, user.RoleUser)
}

func (h *Handler) ListVendors(c *gin.Context) {
	h.listByRole(c, user.RoleVendor)
}

func (h *Handler) listByRole(c *gin.Context, role string) {
	out, err := h.users.ListByRole(c.Request.Context(), role, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list accounts"})
		return
	}
	if out == nil {
		out = []user.User{}
	}
	c.JSON(http.StatusOK, out)
}

type patchUserReq struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("user_id"), 10, 64)

	var req patchUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.users.UpdateProfile(c.Request.Context(), id, user.RoleUser, req.Name, nil)
	if errors.Is(err, auth.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

func (h *Handler) UpdateVendor(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("vendor_id"), 10, 64)

	var req patchUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Category != nil && !user.ValidCategory(*req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
		return
	}

	err := h.users.UpdateProfile(c.Request.Context(), id, user.RoleVendor, req.Name, req.Category)
	if errors.Is(err, auth.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "vendor not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update vendor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vendor updated successfully"})
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("user_id"), 10, 64)
	h.deleteByRole(c, id, user.RoleUser, "user", "User deleted successfully")
}

func (h *Handler) DeleteVendor(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("vendor_id"), 10, 64)
	h.deleteByRole(c, id, user.RoleVendor, "vendor", "Vendor deleted successfully")
}

func (h *Handler) deleteByRole(c *gin.Context, id int64, role, label, okMsg string) {
	err := h.users.Delete(c.Request.Context(), id, role)
	if errors.Is(err, auth.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": label + " not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete " + label})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": okMsg})
}

func (h *Handler) Transactions(c *gin.Context) {
	out, err := h.orders.AllOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list transactions"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) TransactionReport(c *gin.Context) {
	out, err := h.orders.TransactionReport(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) SalesSummary(c *gin.Context) {
	out, err := h.orders.SalesSummary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build summary"})
		return
	}
	c.JSON(http.StatusOK, out)
}

type addAccountReq struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Category *string `json:"category"`
}

// AddUser creates a shopper account; the role is forced.
func (h *Handler) AddUser(c *gin.Context) {
	var req addAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.createAccount(c, req, user.RoleUser, nil, "User created successfully by admin")
}

// AddVendor creates a vendor account; category is mandatory.
func (h *Handler) AddVendor(c *gin.Context) {
	var req addAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Category == nil || *req.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required for vendor"})
		return
	}
	if !user.ValidCategory(*req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
		return
	}

	h.createAccount(c, req, user.RoleVendor, req.Category, "Vendor created successfully by admin")
}

func (h *Handler) createAccount(c *gin.Context, req addAccountReq, role string, category *string, okMsg string) {
	pwHash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "password hash failed"})
		return
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if _, err := h.users.Create(c.Request.Context(), req.Name, email, pwHash, role, category, nil); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": okMsg})
}
