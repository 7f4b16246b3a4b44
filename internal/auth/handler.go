package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"eventmart/internal/domain/user"
)

type Handler struct {
	jwt   *JWTManager
	users *UserRepo
}

func NewHandler(jwt *JWTManager, users *UserRepo) *Handler {
	return &Handler{jwt: jwt, users: users}
}

type SignupReq struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Role     string  `json:"role" binding:"required"`
	Category *string `json:"category"`
	ImageURL *string `json:"image_url"`
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// validateSignup runs before anything is persisted.
func validateSignup(req SignupReq) error {
	if !user.ValidRole(req.Role) {
		return errors.New("invalid role")
	}
	if req.Role == user.RoleVendor {
		if req.Category == nil || *req.Category == "" {
			return errors.New("category is required for vendor")
		}
		if !user.ValidCategory(*req.Category) {
			return errors.New("invalid category")
		}
	}
	return nil
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateSignup(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	pwHash, err := HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "password hash failed"})
		return
	}

	// Category and image only apply to vendors.
	var category, imageURL *string
	if req.Role == user.RoleVendor {
		category = req.Category
		imageURL = req.ImageURL
	}

	if _, err := h.users.Create(c.Request.Context(), req.Name, req.Email, pwHash, req.Role, category, imageURL); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
}

func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	u, err := h.users.ByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	if !CheckPassword(u.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	token, _, err := h.jwt.Sign(u.ID, u.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token signing failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, CurrentUser(c))
}

// Vendors lets shoppers browse vendor accounts, optionally narrowed to
// one category.
func (h *Handler) Vendors(c *gin.Context) {
	var category *string
	if v := c.Query("category"); v != "" {
		category = &v
	}

	out, err := h.users.ListByRole(c.Request.Context(), user.RoleVendor, category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list vendors"})
		return
	}
	if out == nil {
		out = []user.User{}
	}
	c.JSON(http.StatusOK, out)
}
