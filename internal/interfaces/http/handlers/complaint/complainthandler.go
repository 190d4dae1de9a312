package complaint

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"civicdesk/internal/application/complaint/usecases"
	"civicdesk/internal/infrastructure/storage"
	apperrors "civicdesk/internal/shared/errors"
	"civicdesk/internal/shared/logger"
	"civicdesk/internal/shared/utils"
)

type ComplaintHandler struct {
	submitUC   usecases.SubmitComplaintExecutor
	getUC      usecases.GetComplaintExecutor
	listUC     usecases.ListComplaintsExecutor
	priorityUC usecases.ListByPriorityExecutor
	statusUC   usecases.UpdateStatusExecutor
	deleteUC   usecases.DeleteComplaintExecutor
	statsUC    usecases.GetComplaintStatsExecutor
	photoStore *storage.PhotoStore
	logger     logger.Interface
}

func NewComplaintHandler(
	submitUC usecases.SubmitComplaintExecutor,
	getUC usecases.GetComplaintExecutor,
	listUC usecases.ListComplaintsExecutor,
	priorityUC usecases.ListByPriorityExecutor,
	statusUC usecases.UpdateStatusExecutor,
	deleteUC usecases.DeleteComplaintExecutor,
	statsUC usecases.GetComplaintStatsExecutor,
	photoStore *storage.PhotoStore,
	logger logger.Interface,
) *ComplaintHandler {
	return &ComplaintHandler{
		submitUC:   submitUC,
		getUC:      getUC,
		listUC:     listUC,
		priorityUC: priorityUC,
		statusUC:   statusUC,
		deleteUC:   deleteUC,
		statsUC:    statsUC,
		photoStore: photoStore,
		logger:     logger,
	}
}

// SubmitComplaint handles POST /api/complaints. It accepts a JSON body or
// a multipart form when a photo is attached.
func (h *ComplaintHandler) SubmitComplaint(c *gin.Context) {
	var req SubmitComplaintRequest
	photoPath := ""

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&req); err != nil {
			h.logger.Warnw("invalid multipart form for submit complaint", "error", err)
			utils.ErrorResponse(c, http.StatusBadRequest, utils.FormatBindingError(err))
			return
		}

		file, err := c.FormFile("photo")
		if err == nil && file != nil {
			stored, storeErr := h.savePhoto(file)
			if storeErr != nil {
				utils.ErrorResponse(c, http.StatusBadRequest, storeErr.Error())
				return
			}
			photoPath = stored
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for submit complaint", "error", err)
			utils.ErrorResponse(c, http.StatusBadRequest, utils.FormatBindingError(err))
			return
		}
	}

	userID := c.GetUint("user_id")
	result, err := h.submitUC.Execute(c.Request.Context(), req.ToCommand(userID, photoPath))
	if err != nil {
		var dup *usecases.DuplicateComplaintError
		if errors.As(err, &dup) {
			utils.ConflictResponseWithPayload(c, "a similar complaint was reported recently", gin.H{
				"similarity":         dup.Similarity,
				"matching_complaint": dup.Matching,
			})
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Complaint submitted successfully")
}

// GetComplaint handles GET /api/complaints/:id. The path parameter is a
// numeric ID or a public reference.
func (h *ComplaintHandler) GetComplaint(c *gin.Context) {
	query := usecases.GetComplaintQuery{
		UserID:   c.GetUint("user_id"),
		UserRole: c.GetString("user_role"),
	}

	if complaintID, err := parseComplaintID(c); err == nil {
		query.ComplaintID = complaintID
	} else {
		query.Reference = c.Param("id")
	}

	result, err := h.getUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListComplaints handles GET /api/complaints
func (h *ComplaintHandler) ListComplaints(c *gin.Context) {
	req := parseListComplaintsRequest(c)

	result, err := h.listUC.Execute(c.Request.Context(),
		req.ToQuery(c.GetUint("user_id"), c.GetString("user_role")))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Complaints, result.Total, result.Page, result.PageSize)
}

// ListByPriority handles GET /api/complaints/priority
func (h *ComplaintHandler) ListByPriority(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.priorityUC.Execute(c.Request.Context(), usecases.ListByPriorityQuery{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
		UserID:   c.GetUint("user_id"),
		UserRole: c.GetString("user_role"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateStatusRequest carries the target status for a complaint.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=assigned in_progress completed"`
}

// UpdateStatus handles PATCH /api/complaints/:id/status
func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update status", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.FormatBindingError(err))
		return
	}

	result, err := h.statusUC.Execute(c.Request.Context(), usecases.UpdateStatusCommand{
		ComplaintID: complaintID,
		NewStatus:   req.Status,
		ChangedBy:   c.GetUint("user_id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Complaint status updated successfully", result)
}

// DeleteComplaint handles DELETE /api/complaints/:id
func (h *ComplaintHandler) DeleteComplaint(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteComplaintCommand{
		ComplaintID: complaintID,
		DeletedBy:   c.GetUint("user_id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Complaint deleted successfully", result)
}

// GetStats handles GET /api/complaints/stats
func (h *ComplaintHandler) GetStats(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context(), usecases.GetComplaintStatsQuery{
		UserID:   c.GetUint("user_id"),
		UserRole: c.GetString("user_role"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ComplaintHandler) savePhoto(header *multipart.FileHeader) (string, error) {
	if h.photoStore == nil {
		return "", apperrors.NewValidationError("photo uploads are not enabled")
	}

	f, err := header.Open()
	if err != nil {
		h.logger.Warnw("failed to open uploaded photo", "error", err)
		return "", apperrors.NewValidationError("failed to read uploaded photo")
	}
	defer f.Close()

	stored, err := h.photoStore.Save(header.Filename, f)
	if err != nil {
		h.logger.Warnw("failed to store uploaded photo", "filename", header.Filename, "error", err)
		return "", apperrors.NewValidationError(err.Error())
	}

	return stored, nil
}
