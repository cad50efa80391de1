package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/watertight-recruitment/recruitment-backend/internal/dtos"
	"github.com/watertight-recruitment/recruitment-backend/internal/services"
	"go.uber.org/zap"
)

type JobHandler struct {
	JobService *services.JobService
	Logger     *zap.Logger
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(j *services.JobService, logger *zap.Logger) *JobHandler {
	return &JobHandler{
		JobService: j,
		Logger:     logger,
	}
}

// ListJobs is GET /jobs. A non-blank ?q= searches titles and descriptions.
func (h *JobHandler) ListJobs(c *gin.Context) {
	var search *string
	if q := c.Query("q"); strings.TrimSpace(q) != "" {
		search = &q
	}

	jobs, err := h.JobService.GetAll(c.Request.Context(), search)
	if err != nil {
		h.Logger.Error("list jobs failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list jobs"})
		return
	}
	count, err := h.JobService.Count(c.Request.Context())
	if err != nil {
		h.Logger.Error("count jobs failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list jobs"})
		return
	}

	c.JSON(http.StatusOK, dtos.JobListResponse{Count: count, Jobs: jobs})
}

// GetJob is GET /jobs/:ref
func (h *JobHandler) GetJob(c *gin.Context) {
	ref := c.Param("ref")
	job, err := h.JobService.GetByRef(c.Request.Context(), ref)
	if err != nil {
		h.Logger.Error("get job failed", zap.String("ref", ref), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load job"})
		return
	}
	if job == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}
	c.JSON(http.StatusOK, job)
}

// creating the job
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job := req.ToModel()
	err := h.JobService.CreateJob(c.Request.Context(), job)
	if errors.Is(err, services.ErrJobExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "A job with ref " + job.Ref + " already exists"})
		return
	}
	if err != nil {
		h.Logger.Error("create job failed", zap.String("ref", job.Ref), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job: " + err.Error()})
		return
	}

	if job.EssentialRequirements == nil {
		job.EssentialRequirements = []string{}
	}
	if job.PreferredRequirements == nil {
		job.PreferredRequirements = []string{}
	}
	c.JSON(http.StatusCreated, job)
}
