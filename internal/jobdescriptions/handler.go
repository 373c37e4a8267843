package jobdescriptions

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"jd-backend/internal/extract"
	"jd-backend/internal/llm"
	"jd-backend/internal/normalize"
	"jd-backend/internal/shared/server/middleware"
	"jd-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler exposes the job description pipeline over HTTP.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches job description routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/jd/upload", h.upload)
	rg.POST("/jd/enhance", h.enhance)
	rg.POST("/jd/submit", h.submit)
	rg.GET("/jd/company/:companyId", h.listByCompany)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	res, err := h.Svc.Upload(c.Request.Context(), middleware.UserIDFromContext(c), fileHeader.Filename, file)
	if err != nil {
		writePipelineError(c, err, "failed to process job description")
		return
	}

	c.Set(middleware.DocumentKeyCtx, res.DocumentKey)

	data := make(gin.H, len(res.Record)+1)
	for k, v := range res.Record {
		data[k] = v
	}
	data["document_key"] = res.DocumentKey
	respond.Success(c, http.StatusOK, data)
}

func (h *Handler) enhance(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if len(body) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "job description data is required", nil)
		return
	}

	res, err := h.Svc.Enhance(c.Request.Context(), body)
	if err != nil {
		writePipelineError(c, err, "failed to enhance job description")
		return
	}
	respond.Success(c, http.StatusOK, res)
}

type submitRequest struct {
	DestinationRecord
	Description string `json:"description"`
}

func (h *Handler) submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	jd, err := h.Svc.Submit(c.Request.Context(), req.DestinationRecord, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrCompanyNotFound):
			respond.Error(c, http.StatusNotFound, "company_not_found", "company not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to submit job description", nil)
		}
		return
	}
	c.Set(middleware.CompanyIDCtx, jd.CompanyID)
	respond.Success(c, http.StatusCreated, gin.H{
		"id":         jd.ID,
		"company_id": jd.CompanyID,
		"title":      jd.Title,
	})
}

func (h *Handler) listByCompany(c *gin.Context) {
	companyID, err := strconv.ParseInt(strings.TrimSpace(c.Param("companyId")), 10, 64)
	if err != nil || companyID <= 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "companyId must be a positive integer", nil)
		return
	}

	c.Set(middleware.CompanyIDCtx, companyID)
	jobs, err := h.Svc.ListByCompany(c.Request.Context(), companyID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to retrieve job descriptions", nil)
		return
	}

	resp := make([]gin.H, 0, len(jobs))
	for _, jd := range jobs {
		resp = append(resp, gin.H{
			"id":          jd.ID,
			"company_id":  jd.CompanyID,
			"title":       jd.Title,
			"description": jd.Description,
			"form_data":   jd.FormData,
			"created_at":  jd.CreatedAt,
		})
	}
	respond.Success(c, http.StatusOK, resp)
}

// writePipelineError maps extraction and enhancement failures to responses.
func writePipelineError(c *gin.Context, err error, fallback string) {
	var verr *normalize.ValidationError
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, extract.ErrUnsupportedFormat):
		respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_format",
			"Unsupported file format. Only PDF, DOCX, and image formats are supported.", nil)
	case errors.Is(err, llm.ErrMalformedModelOutput):
		respond.Error(c, http.StatusBadGateway, "malformed_model_output", "model response was not valid JSON", nil)
	case errors.As(err, &verr):
		respond.Error(c, http.StatusUnprocessableEntity, "schema_validation_failed", "model response did not match the schema",
			gin.H{"schema": verr.Schema, "fields": verr.Fields})
	case errors.Is(err, llm.ErrNotImplemented):
		respond.Error(c, http.StatusServiceUnavailable, "llm_unavailable", "no language model is configured", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
