package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "teamlab/api/v1"
	"teamlab/internal/service"
)

type CourseHandler struct {
	*Handler
	courseService service.CourseService
}

func NewCourseHandler(handler *Handler, courseService service.CourseService) *CourseHandler {
	return &CourseHandler{
		Handler:       handler,
		courseService: courseService,
	}
}

// CreateCourse godoc
// @Summary Create a course
// @Schemes
// @Description Team size bounds plus the per-team VM resource template
// @Tags course
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body v1.CreateCourseRequest true "params"
// @Success 200 {object} v1.CourseResponse
// @Router /api/v1/courses [post]
func (h *CourseHandler) CreateCourse(ctx *gin.Context) {
	req := new(v1.CreateCourseRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	course, err := h.courseService.CreateCourse(ctx, GetUserIdFromCtx(ctx), req)
	if err != nil {
		h.logger.WithContext(ctx).Error("courseService.CreateCourse error", zap.Error(err))
		v1.HandleError(ctx, http.StatusBadRequest, err, nil)
		return
	}
	v1.HandleSuccess(ctx, course)
}

// UpdateCourse godoc
// @Summary Update a course
// @Schemes
// @Description Template edits never touch teams already proposed
// @Tags course
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "course id"
// @Param request body v1.UpdateCourseRequest true "params"
// @Success 200 {object} v1.Response
// @Router /api/v1/courses/{id} [put]
func (h *CourseHandler) UpdateCourse(ctx *gin.Context) {
	courseId, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}
	req := new(v1.UpdateCourseRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	if err := h.courseService.UpdateCourse(ctx, GetUserIdFromCtx(ctx), courseId, req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, err, nil)
		return
	}
	v1.HandleSuccess(ctx, nil)
}

// GetCourse godoc
// @Summary Course detail
// @Schemes
// @Description
// @Tags course
// @Produce json
// @Security Bearer
// @Param id path int true "course id"
// @Success 200 {object} v1.CourseResponse
// @Router /api/v1/courses/{id} [get]
func (h *CourseHandler) GetCourse(ctx *gin.Context) {
	courseId, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}
	course, err := h.courseService.GetCourse(ctx, courseId)
	if err != nil {
		v1.HandleError(ctx, http.StatusNotFound, err, nil)
		return
	}
	v1.HandleSuccess(ctx, course)
}

// ListCourses godoc
// @Summary List courses
// @Schemes
// @Description
// @Tags course
// @Produce json
// @Security Bearer
// @Success 200 {object} v1.Response
// @Router /api/v1/courses [get]
func (h *CourseHandler) ListCourses(ctx *gin.Context) {
	courses, err := h.courseService.ListCourses(ctx)
	if err != nil {
		v1.HandleError(ctx, http.StatusInternalServerError, err, nil)
		return
	}
	v1.HandleSuccess(ctx, courses)
}

// Enroll godoc
// @Summary Enroll one student
// @Schemes
// @Description
// @Tags course
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "course id"
// @Param request body v1.EnrollRequest true "params"
// @Success 200 {object} v1.Response
// @Router /api/v1/courses/{id}/enrollments [post]
func (h *CourseHandler) Enroll(ctx *gin.Context) {
	courseId, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}
	req := new(v1.EnrollRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	if err := h.courseService.Enroll(ctx, GetUserIdFromCtx(ctx), courseId, req.StudentId); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, err, nil)
		return
	}
	v1.HandleSuccess(ctx, nil)
}

// EnrollCSV godoc
// @Summary Bulk enroll from CSV
// @Schemes
// @Description CSV with a header line and one student email per record
// @Tags course
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param id path int true "course id"
// @Param file formData file true "csv file"
// @Success 200 {object} v1.Response
// @Router /api/v1/courses/{id}/enrollments/csv [post]
func (h *CourseHandler) EnrollCSV(ctx *gin.Context) {
	courseId, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}
	defer file.Close()

	result, err := h.courseService.EnrollCSV(ctx, GetUserIdFromCtx(ctx), courseId, file)
	if err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, err, nil)
		return
	}
	v1.HandleSuccess(ctx, result)
}
