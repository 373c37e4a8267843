package companies

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jd-backend/internal/shared/server/middleware"
	"jd-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/company/create", h.create)
	rg.PUT("/company/update", h.update)
	rg.GET("/company/user/:userId", h.byUser)
}

type createRequest struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

type updateRequest struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.UserID == "" {
		req.UserID = middleware.UserIDFromContext(c)
	}

	company, err := h.Svc.Create(c.Request.Context(), Company{
		UserID:      req.UserID,
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
	})
	if err != nil {
		writeError(c, err, "failed to create company profile")
		return
	}
	respond.Success(c, http.StatusCreated, company)
}

func (h *Handler) update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	company, err := h.Svc.Update(c.Request.Context(), Company{
		ID:          req.ID,
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
	})
	if err != nil {
		writeError(c, err, "failed to update company profile")
		return
	}
	respond.Success(c, http.StatusOK, company)
}

// byUser answers with null data when the user has no company yet.
func (h *Handler) byUser(c *gin.Context) {
	company, err := h.Svc.GetByUserID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Success(c, http.StatusOK, nil)
			return
		}
		writeError(c, err, "failed to retrieve company profile")
		return
	}
	respond.Success(c, http.StatusOK, company)
}

func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrExists):
		respond.Error(c, http.StatusBadRequest, "company_exists", "User already has a company profile", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "company not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
