package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/watertight-recruitment/recruitment-backend/internal/dtos"
	"github.com/watertight-recruitment/recruitment-backend/internal/models"
	"github.com/watertight-recruitment/recruitment-backend/internal/services"
	"go.uber.org/zap"
)

type EoiHandler struct {
	EoiService *services.EoiService
	Logger     *zap.Logger
}

func NewEoiHandler(e *services.EoiService, logger *zap.Logger) *EoiHandler {
	return &EoiHandler{
		EoiService: e,
		Logger:     logger,
	}
}

// Apply is the public POST /apply endpoint.
func (h *EoiHandler) Apply(c *gin.Context) {
	form, err := postedForm(c)
	if err != nil {
		badBody(c, err)
		return
	}

	// Dates of birth are checked against the same clock that stamps the submission.
	sub := dtos.BindEoiSubmission(form, h.now)
	if sub == nil {
		h.Logger.Debug("application rejected", zap.Error(form.Err()))
		rejectForm(c, form)
		return
	}

	id, err := h.EoiService.Submit(c.Request.Context(), sub)
	if errors.Is(err, services.ErrNoSuchJobReference) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "no_such_job_reference",
			"message": "There is no job with reference " + sub.JobReferenceID + ".",
		})
		return
	}
	if err != nil {
		h.Logger.Error("submit eoi failed", zap.String("ref", sub.JobReferenceID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application"})
		return
	}

	h.Logger.Info("eoi submitted", zap.Uint("id", id), zap.String("ref", sub.JobReferenceID))
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *EoiHandler) now() time.Time {
	if h.EoiService.Now != nil {
		return h.EoiService.Now()
	}
	return time.Now()
}

// ListEois is GET /manage/eois with the dashboard's filter and sort parameters.
func (h *EoiHandler) ListEois(c *gin.Context) {
	form := queryForm(c)
	criteria := dtos.BindEoiCriteria(form)
	if form.HasErrors() {
		rejectForm(c, form)
		return
	}

	eois, err := h.EoiService.Find(c.Request.Context(), criteria)
	if err != nil {
		h.Logger.Error("find eois failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search applications"})
		return
	}

	byStatus := make(map[models.EoiStatus][]dtos.EoiResponse, len(models.EoiStatuses))
	for status, group := range services.GroupByStatus(eois) {
		byStatus[status] = dtos.NewEoiResponses(group)
	}

	c.JSON(http.StatusOK, dtos.EoiListResponse{
		Count:    len(eois),
		Eois:     dtos.NewEoiResponses(eois),
		ByStatus: byStatus,
	})
}

// GetEoi is GET /manage/eois/:id
func (h *EoiHandler) GetEoi(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "EOI id must be a positive number"})
		return
	}

	eoi, err := h.EoiService.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		h.Logger.Error("get eoi failed", zap.Uint64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load application"})
		return
	}
	if eoi == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "EOI not found"})
		return
	}
	c.JSON(http.StatusOK, dtos.NewEoiResponse(eoi))
}

// ChangeStatus is POST /manage/eois/status
func (h *EoiHandler) ChangeStatus(c *gin.Context) {
	form, err := postedForm(c)
	if err != nil {
		badBody(c, err)
		return
	}
	change := dtos.BindStatusChange(form)
	if change == nil {
		rejectForm(c, form)
		return
	}

	ok, err := h.EoiService.SetStatus(c.Request.Context(), change.EoiID, change.Status)
	if err != nil {
		h.Logger.Error("set eoi status failed", zap.Uint("id", change.EoiID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change status"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "EOI not found"})
		return
	}

	h.Logger.Info("eoi status changed",
		zap.Uint("id", change.EoiID),
		zap.String("status", string(change.Status)),
		zap.String("by", currentUserName(c)),
	)
	c.JSON(http.StatusOK, gin.H{"id": change.EoiID, "status": change.Status})
}

// DeleteEois is POST|DELETE /manage/eois/delete. An eoiId removes one EOI;
// a reference removes every EOI for that job.
func (h *EoiHandler) DeleteEois(c *gin.Context) {
	form, err := postedForm(c)
	if err != nil {
		badBody(c, err)
		return
	}
	del := dtos.BindEoiDeletion(form)
	if del == nil {
		rejectForm(c, form)
		return
	}

	ctx := c.Request.Context()
	switch {
	case del.EoiID != nil:
		removed, err := h.EoiService.Delete(ctx, *del.EoiID)
		if err != nil {
			h.Logger.Error("delete eoi failed", zap.Uint("id", *del.EoiID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete application"})
			return
		}
		if !removed {
			c.JSON(http.StatusNotFound, gin.H{"error": "EOI not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": 1})

	case del.JobReferenceID != nil:
		n, err := h.EoiService.DeleteForJob(ctx, *del.JobReferenceID)
		if err != nil {
			h.Logger.Error("delete eois for job failed", zap.String("ref", *del.JobReferenceID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete applications"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": n})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either eoiId or reference is required"})
	}
}
