package profiles

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"hustlecv-backend/internal/render"
	"hustlecv-backend/internal/shared/metrics"
	"hustlecv-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the profiles service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches generation and export routes.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/generate", h.generate)
	r.GET("/download-cv/:email", h.downloadCV)
}

type generateRequest struct {
	FullName      string `json:"full_name" binding:"required"`
	Email         string `json:"email" binding:"required"`
	RawExperience string `json:"raw_experience" binding:"required"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "full_name, email and raw_experience are required", nil)
		return
	}
	c.Set("profileEmail", req.Email)

	result, err := h.Svc.Generate(c.Request.Context(), GenerateInput{
		FullName:      req.FullName,
		Email:         req.Email,
		RawExperience: req.RawExperience,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			// The store is the only dependency allowed to hard-fail this
			// path; detail stays server-side.
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save profile", nil)
		}
		return
	}

	c.Set("generateStatus", result.Status)
	respond.JSON(c, http.StatusOK, gin.H{
		"status": result.Status,
		"cv":     result.CV,
	})
}

func (h *Handler) downloadCV(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "email is required", nil)
		return
	}
	c.Set("profileEmail", email)

	profile, err := h.Svc.GetByEmail(c.Request.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "no CV found for this email", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load profile", nil)
		}
		return
	}
	if profile.FormattedCV == nil {
		respond.Error(c, http.StatusNotFound, "not_found", "no generated CV for this email yet", nil)
		return
	}

	data, err := render.PDF(render.Document{
		Title: profile.FullName,
		Body:  *profile.FormattedCV,
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render CV", nil)
		return
	}

	metrics.IncCVDownload()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_CV.pdf", profile.FullName))
	c.Data(http.StatusOK, "application/pdf", data)
}
