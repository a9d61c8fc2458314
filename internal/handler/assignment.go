package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "teamlab/api/v1"
	"teamlab/internal/service"
)

type AssignmentHandler struct {
	*Handler
	assignmentService service.AssignmentService
}

func NewAssignmentHandler(handler *Handler, assignmentService service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{
		Handler:           handler,
		assignmentService: assignmentService,
	}
}

// CreateAssignment godoc
// @Summary Publish an assignment
// @Schemes
// @Description Opens one draft delivery per enrolled student
// @Tags assignment
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body v1.CreateAssignmentRequest true "params"
// @Success 200 {object} v1.AssignmentResponse
// @Router /api/v1/assignments [post]
func (h *AssignmentHandler) CreateAssignment(ctx *gin.Context) {
	req := new(v1.CreateAssignmentRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	assignment, err := h.assignmentService.CreateAssignment(ctx, GetUserIdFromCtx(ctx), req)
	if err != nil {
		h.logger.WithContext(ctx).Error("assignmentService.CreateAssignment error", zap.Error(err))
		v1.HandleError(ctx, http.StatusBadRequest, err, nil)
		return
	}
	v1.HandleSuccess(ctx, assignment)
}

// ReadDelivery godoc
// @Summary Mark own delivery as read
// @Schemes
// @Description
// @Tags assignment
// @Produce json
// @Security Bearer
// @Param id path int true "assignment id"
// @Success 200 {object} v1.DeliveryResponse
// @Router /api/v1/assignments/{id}/read [post]
func (h *AssignmentHandler) ReadDelivery(ctx *gin.Context) {
	assignmentId, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}
	delivery, err := h.assignmentService.ReadDelivery(ctx, GetUserIdFromCtx(ctx), assignmentId)
	if err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, err, nil)
		return
	}
	v1.HandleSuccess(ctx, delivery)
}

// SubmitDelivery godoc
// @Summary Submit own delivery
// @Schemes
// @Description Closed once the due date sweep has locked it
// @Tags assignment
// @Produce json
// @Security Bearer
// @Param id path int true "assignment id"
// @Success 200 {object} v1.DeliveryResponse
// @Router /api/v1/assignments/{id}/submit [post]
func (h *AssignmentHandler) SubmitDelivery(ctx *gin.Context) {
	assignmentId, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}
	delivery, err := h.assignmentService.SubmitDelivery(ctx, GetUserIdFromCtx(ctx), assignmentId)
	if err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, err, nil)
		return
	}
	v1.HandleSuccess(ctx, delivery)
}
