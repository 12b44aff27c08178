package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/ramya05916-rgb/Hostel-Leave-Management-System/datefmt"
	"github.com/ramya05916-rgb/Hostel-Leave-Management-System/models"
	"github.com/ramya05916-rgb/Hostel-Leave-Management-System/pdf"
)

type LeaveHandler struct {
	DB  *gorm.DB
	PDF *pdf.Generator
	Log *logrus.Logger
}

func NewLeaveHandler(db *gorm.DB, gen *pdf.Generator, log *logrus.Logger) *LeaveHandler {
	return &LeaveHandler{DB: db, PDF: gen, Log: log}
}

type applyReq struct {
	StudentID uint   `json:"student_id"`
	FromDate  string `json:"from_date"`
	ToDate    string `json:"to_date"`
	Reason    string `json:"reason"`
}

type decisionReq struct {
	AdminComment string `json:"admin_comment"`
}

// leaveView is the student-facing rendering of a leave record: human dates in
// the fixed display zone, capitalized status.
type leaveView struct {
	ID           uint    `json:"id"`
	FromDate     string  `json:"from_date"`
	ToDate       string  `json:"to_date"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	AdminComment string  `json:"admin_comment"`
	PDFPath      *string `json:"pdf_path"`
	AppliedAt    string  `json:"applied_at"`
}

func toView(r models.LeaveRequest) leaveView {
	return leaveView{
		ID:           r.ID,
		FromDate:     datefmt.Date(r.FromDate),
		ToDate:       datefmt.Date(r.ToDate),
		Reason:       r.Reason,
		Status:       models.DisplayStatus(r.Status),
		AdminComment: r.AdminComment,
		PDFPath:      r.PDFPath,
		AppliedAt:    datefmt.Timestamp(r.AppliedAt),
	}
}

// POST /apply-leave
func (h *LeaveHandler) Apply(c echo.Context) error {
	var req applyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid payload"})
	}

	req.FromDate = strings.TrimSpace(req.FromDate)
	req.ToDate = strings.TrimSpace(req.ToDate)
	req.Reason = strings.TrimSpace(req.Reason)
	if req.StudentID == 0 || req.FromDate == "" || req.ToDate == "" || req.Reason == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "all fields are required"})
	}

	rec := models.LeaveRequest{
		StudentID: req.StudentID,
		FromDate:  req.FromDate,
		ToDate:    req.ToDate,
		Reason:    req.Reason,
		Status:    models.StatusPending,
	}
	if err := h.DB.Create(&rec).Error; err != nil {
		h.Log.WithError(err).Error("apply-leave: insert failed")
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "something went wrong"})
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "leave request submitted",
		"id":      rec.ID,
	})
}

// GET /api/my-leaves?student_id=
func (h *LeaveHandler) MyLeaves(c echo.Context) error {
	raw := strings.TrimSpace(c.QueryParam("student_id"))
	if raw == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "student_id is required"})
	}
	studentID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "student_id must be a number"})
	}

	var rows []models.LeaveRequest
	if err := h.DB.Where("student_id = ?", studentID).
		Order("applied_at DESC, id DESC").Find(&rows).Error; err != nil {
		h.Log.WithError(err).Error("my-leaves: query failed")
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "something went wrong"})
	}

	views := make([]leaveView, 0, len(rows))
	for _, r := range rows {
		views = append(views, toView(r))
	}
	return c.JSON(http.StatusOK, map[string]any{"leaves": views})
}

// adminLeaveRow joins a leave record with the applicant's identity fields.
type adminLeaveRow struct {
	ID           uint    `json:"id"`
	StudentID    uint    `json:"student_id"`
	FromDate     string  `json:"from_date"`
	ToDate       string  `json:"to_date"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	AdminComment string  `json:"admin_comment"`
	PDFPath      *string `json:"pdf_path"`
	AppliedAt    string  `json:"applied_at"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Hostel       string  `json:"hostel"`
	Year         string  `json:"year"`
}

// GET /api/leaves (admin)
func (h *LeaveHandler) ListAll(c echo.Context) error {
	var rows []adminLeaveRow
	err := h.DB.Table("leave_requests").
		Select("leave_requests.id, leave_requests.student_id, leave_requests.from_date, leave_requests.to_date, " +
			"leave_requests.reason, leave_requests.status, leave_requests.admin_comment, leave_requests.pdf_path, " +
			"to_char(leave_requests.applied_at, 'YYYY-MM-DD HH24:MI') AS applied_at, " +
			"students.name, students.email, students.hostel, students.year").
		Joins("JOIN students ON students.id = leave_requests.student_id").
		Order("leave_requests.applied_at DESC, leave_requests.id DESC").
		Scan(&rows).Error
	if err != nil {
		h.Log.WithError(err).Error("leaves: query failed")
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "something went wrong"})
	}

	return c.JSON(http.StatusOK, map[string]any{"leaves": rows})
}

// POST /api/leaves/:id/approve (admin)
func (h *LeaveHandler) Approve(c echo.Context) error {
	rec, errResp := h.findLeave(c)
	if rec == nil {
		return errResp
	}
	if rec.Status != models.StatusPending {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "leave request already decided"})
	}

	var req decisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid payload"})
	}
	comment := strings.TrimSpace(req.AdminComment)
	if comment == "" {
		comment = "Approved"
	}

	updates := map[string]any{
		"status":        models.StatusAccepted,
		"admin_comment": comment,
	}
	if err := h.DB.Model(&models.LeaveRequest{}).Where("id = ?", rec.ID).Updates(updates).Error; err != nil {
		h.Log.WithError(err).Error("approve: update failed")
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "something went wrong"})
	}
	rec.Status = models.StatusAccepted
	rec.AdminComment = comment

	url, err := h.renderCertificate(rec)
	if err != nil {
		h.Log.WithError(err).WithField("leave_id", rec.ID).Error("approve: certificate failed")
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "certificate generation failed"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "leave request approved",
		"pdf_url": url,
	})
}

// POST /api/leaves/:id/reject (admin)
func (h *LeaveHandler) Reject(c echo.Context) error {
	rec, errResp := h.findLeave(c)
	if rec == nil {
		return errResp
	}
	if rec.Status != models.StatusPending {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "leave request already decided"})
	}

	var req decisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid payload"})
	}
	comment := strings.TrimSpace(req.AdminComment)
	if comment == "" {
		comment = "Rejected"
	}

	updates := map[string]any{
		"status":        models.StatusRejected,
		"admin_comment": comment,
	}
	if err := h.DB.Model(&models.LeaveRequest{}).Where("id = ?", rec.ID).Updates(updates).Error; err != nil {
		h.Log.WithError(err).Error("reject: update failed")
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "something went wrong"})
	}

	return c.JSON(http.StatusOK, map[string]any{"message": "leave request rejected"})
}

// GET /api/generate-pdf/:id
func (h *LeaveHandler) GeneratePDF(c echo.Context) error {
	rec, errResp := h.findLeave(c)
	if rec == nil {
		return errResp
	}
	if rec.Status != models.StatusAccepted {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "certificate available only for accepted leave requests"})
	}

	url, err := h.renderCertificate(rec)
	if err != nil {
		h.Log.WithError(err).WithField("leave_id", rec.ID).Error("generate-pdf: certificate failed")
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "certificate generation failed"})
	}

	return c.JSON(http.StatusOK, map[string]any{"pdf_url": url})
}

// findLeave loads the :id leave record. On failure it returns nil and the
// already-written error response.
func (h *LeaveHandler) findLeave(c echo.Context) (*models.LeaveRequest, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return nil, c.JSON(http.StatusNotFound, map[string]any{"error": "leave request not found"})
	}
	var rec models.LeaveRequest
	if err := h.DB.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, c.JSON(http.StatusNotFound, map[string]any{"error": "leave request not found"})
		}
		h.Log.WithError(err).Error("leave lookup failed")
		return nil, c.JSON(http.StatusInternalServerError, map[string]any{"error": "something went wrong"})
	}
	return &rec, nil
}

// renderCertificate generates the approval document and records its public
// path on the leave record.
func (h *LeaveHandler) renderCertificate(rec *models.LeaveRequest) (string, error) {
	var student models.Student
	if err := h.DB.First(&student, rec.StudentID).Error; err != nil {
		return "", err
	}

	url, err := h.PDF.Generate(rec, &student)
	if err != nil {
		return "", err
	}

	if err := h.DB.Model(&models.LeaveRequest{}).Where("id = ?", rec.ID).
		Update("pdf_path", url).Error; err != nil {
		return "", err
	}
	rec.PDFPath = &url
	return url, nil
}
