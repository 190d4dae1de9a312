package complaint

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"civicdesk/internal/application/complaint/usecases"
	"civicdesk/internal/shared/errors"
	"civicdesk/internal/shared/utils"
)

// SubmitComplaintRequest is the JSON body for text-only submissions.
// Multipart submissions carry the same fields as form values plus the
// photo file.
type SubmitComplaintRequest struct {
	Category    string   `json:"category" form:"category"`
	Description string   `json:"description" form:"description" binding:"required"`
	Location    string   `json:"location" form:"location" binding:"required"`
	AreaWeight  *float64 `json:"area_weight" form:"area_weight"`
}

func (r SubmitComplaintRequest) ToCommand(reporterID uint, photoPath string) usecases.SubmitComplaintCommand {
	return usecases.SubmitComplaintCommand{
		Category:    r.Category,
		Description: r.Description,
		Location:    r.Location,
		PhotoPath:   photoPath,
		AreaWeight:  r.AreaWeight,
		ReporterID:  reporterID,
	}
}

type ListComplaintsRequest struct {
	Status    string
	Category  string
	Severity  string
	Location  string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

func parseListComplaintsRequest(c *gin.Context) ListComplaintsRequest {
	pagination := utils.ParsePagination(c)

	return ListComplaintsRequest{
		Status:    c.Query("status"),
		Category:  c.Query("category"),
		Severity:  c.Query("severity"),
		Location:  c.Query("location"),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
}

func (r ListComplaintsRequest) ToQuery(userID uint, userRole string) usecases.ListComplaintsQuery {
	return usecases.ListComplaintsQuery{
		Status:    r.Status,
		Category:  r.Category,
		Severity:  r.Severity,
		Location:  r.Location,
		Page:      r.Page,
		PageSize:  r.PageSize,
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
		UserID:    userID,
		UserRole:  userRole,
	}
}

func parseComplaintID(c *gin.Context) (uint, error) {
	idParam := c.Param("id")
	parsed, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil || parsed == 0 {
		return 0, errors.NewValidationError("invalid complaint ID")
	}
	return uint(parsed), nil
}
