package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"housequay/internal/domain"
	"housequay/internal/middleware"
	"housequay/internal/pkg/response"
	"housequay/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects a group already gated by JWTAuth + AdminOnly.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", h.ListUsers)
	rg.GET("/users/:id", h.GetUser)
	rg.PATCH("/users/:id", h.UserAction)

	rg.GET("/listings", h.ListPendingListings)
	rg.PATCH("/listings/:id", h.ListingAction)

	rg.GET("/reports", h.ListReports)
	rg.PATCH("/reports/:id", h.UpdateReport)

	rg.GET("/stats", h.Stats)
}

func (h *Handler) ListUsers(c *gin.Context) {
	var f repository.UserFilters
	f.Role = c.Query("role")
	f.Search = c.Query("search")
	if v := c.Query("suspended"); v != "" {
		suspended := v == "true" || v == "1"
		f.Suspended = &suspended
	}
	f.Limit, f.Offset = pagination(c)

	users, total, err := h.service.ListUsers(c.Request.Context(), f)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"users": users, "total": total})
}

func (h *Handler) GetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	u, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": u})
}

func (h *Handler) UserAction(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	var req UserActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	u, err := h.service.ApplyUserAction(c.Request.Context(), actor, id, UserAction(req.Action), req.Reason)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": u})
}

func (h *Handler) ListPendingListings(c *gin.Context) {
	limit, offset := pagination(c)

	listings, total, err := h.service.ListPendingListings(c.Request.Context(), limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"listings": listings, "total": total})
}

func (h *Handler) ListingAction(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid listing ID")
		return
	}

	var req ListingActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	l, err := h.service.ApplyListingAction(c.Request.Context(), id, ListingAction(req.Action), req.Reason)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"listing": l})
}

func (h *Handler) ListReports(c *gin.Context) {
	limit, offset := pagination(c)

	reports, total, err := h.service.ListReports(c.Request.Context(), c.Query("status"), limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reports": reports, "total": total})
}

func (h *Handler) UpdateReport(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid report ID")
		return
	}

	var req ReportUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rep, err := h.service.UpdateReport(c.Request.Context(), actor, id, domain.ReportStatus(req.Status), req.AdminNotes)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"report": rep})
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

func pagination(c *gin.Context) (limit, offset int) {
	limit = 20
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 1 {
		offset = (v - 1) * limit
	}
	return limit, offset
}

func handleError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid moderation request")
	case ErrSelfTarget:
		response.Error(c, http.StatusBadRequest, "SELF_TARGET", "Admins cannot target their own account")
	case ErrInvalidTransition:
		response.Error(c, http.StatusBadRequest, "INVALID_TRANSITION", "State transition is not allowed")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
