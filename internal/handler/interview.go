package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"wagehire/internal/logger"
	"wagehire/internal/middleware"
	"wagehire/internal/model"
	"wagehire/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

type InterviewHandler struct {
	svc *service.InterviewService
}

func NewInterviewHandler(svc *service.InterviewService) *InterviewHandler {
	return &InterviewHandler{svc: svc}
}

func (h *InterviewHandler) requester(c *gin.Context) (userID, role string) {
	return c.GetString(middleware.CtxUserID), c.GetString(middleware.CtxUserRole)
}

func writeInterviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "interview not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, service.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
	default:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	}
}

// POST /api/interviews
func (h *InterviewHandler) Create(c *gin.Context) {
	var req model.InterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	userID, _ := h.requester(c)
	iv, err := h.svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		writeInterviewError(c, err)
		return
	}
	logger.Info("interview.created", "id", iv.ID, "owner", userID)
	c.JSON(http.StatusCreated, iv)
}

// GET /api/interviews
func (h *InterviewHandler) List(c *gin.Context) {
	userID, role := h.requester(c)
	ivs, err := h.svc.List(c.Request.Context(), userID, role)
	if err != nil {
		writeInterviewError(c, err)
		return
	}
	if ivs == nil {
		ivs = []model.Interview{}
	}
	c.JSON(http.StatusOK, ivs)
}

// GET /api/interviews/:id
func (h *InterviewHandler) Get(c *gin.Context) {
	userID, role := h.requester(c)
	iv, err := h.svc.Get(c.Request.Context(), c.Param("id"), userID, role)
	if err != nil {
		writeInterviewError(c, err)
		return
	}
	c.JSON(http.StatusOK, iv)
}

// PUT /api/interviews/:id
func (h *InterviewHandler) Update(c *gin.Context) {
	var req model.InterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	userID, role := h.requester(c)
	iv, err := h.svc.Update(c.Request.Context(), c.Param("id"), userID, role, req)
	if err != nil {
		writeInterviewError(c, err)
		return
	}
	c.JSON(http.StatusOK, iv)
}

// DELETE /api/interviews/:id
func (h *InterviewHandler) Delete(c *gin.Context) {
	userID, role := h.requester(c)
	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), userID, role); err != nil {
		writeInterviewError(c, err)
		return
	}
	logger.Info("interview.deleted", "id", c.Param("id"), "by", userID)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

var exportHeader = []string{
	"Company", "Job Title", "Scheduled Date", "Status", "Round",
	"Type", "Location", "Interviewer", "Notes",
}

// GET /api/interviews/export — the requester's interviews as an xlsx
// attachment.
func (h *InterviewHandler) Export(c *gin.Context) {
	userID, role := h.requester(c)
	ivs, err := h.svc.List(c.Request.Context(), userID, role)
	if err != nil {
		writeInterviewError(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for col, name := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, name)
	}
	for row, iv := range ivs {
		date := ""
		if iv.ScheduledDate != nil {
			date = iv.ScheduledDate.Format("2006-01-02 15:04")
		}
		values := []interface{}{
			iv.CompanyName, iv.JobTitle, date, iv.Status, iv.Round,
			iv.InterviewType, iv.Location, iv.InterviewerName, iv.Notes,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	name := fmt.Sprintf("interviews-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		logger.Error("export.failed", "err", err)
	}
}

// POST /api/interviews/import — bulk-create interviews from an uploaded
// xlsx. Expected columns match the export layout; the first row is the
// header. Rows missing a company or job title are skipped, not fatal.
func (h *InterviewHandler) Import(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read file"})
		return
	}
	defer src.Close()

	f, err := excelize.OpenReader(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "not a valid xlsx file"})
		return
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read sheet"})
		return
	}

	userID, _ := h.requester(c)
	imported, skipped := 0, 0
	for i, row := range rows {
		if i == 0 {
			continue
		}
		get := func(col int) string {
			if col < len(row) {
				return row[col]
			}
			return ""
		}
		req := model.InterviewRequest{
			CompanyName:     get(0),
			JobTitle:        get(1),
			ScheduledDate:   get(2),
			Status:          get(3),
			InterviewType:   get(5),
			Location:        get(6),
			InterviewerName: get(7),
			Notes:           get(8),
		}
		if req.CompanyName == "" || req.JobTitle == "" {
			skipped++
			continue
		}
		if !model.ValidStatus(req.Status) {
			req.Status = ""
		}
		if _, err := h.svc.Create(c.Request.Context(), userID, req); err != nil {
			skipped++
			continue
		}
		imported++
	}

	logger.Info("interviews.imported", "owner", userID, "imported", imported, "skipped", skipped)
	c.JSON(http.StatusOK, gin.H{"imported": imported, "skipped": skipped})
}
