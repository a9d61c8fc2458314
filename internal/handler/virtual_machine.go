package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "teamlab/api/v1"
	"teamlab/internal/service"
)

type VirtualMachineHandler struct {
	*Handler
	vmService service.VirtualMachineService
}

func NewVirtualMachineHandler(handler *Handler, vmService service.VirtualMachineService) *VirtualMachineHandler {
	return &VirtualMachineHandler{
		Handler:   handler,
		vmService: vmService,
	}
}

// CreateVM godoc
// @Summary Create a virtual machine
// @Schemes
// @Description Gated by the team quota; the whole request is checked before anything is written
// @Tags vm
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body v1.CreateVMRequest true "params"
// @Success 200 {object} v1.VirtualMachineResponse
// @Router /api/v1/vms [post]
func (h *VirtualMachineHandler) CreateVM(ctx *gin.Context) {
	req := new(v1.CreateVMRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	vm, err := h.vmService.CreateVM(ctx, GetUserIdFromCtx(ctx), req)
	if err != nil {
		h.logger.WithContext(ctx).Error("vmService.CreateVM error", zap.Error(err))
		v1.HandleError(ctx, http.StatusBadRequest, err, nil)
		return
	}
	v1.HandleSuccess(ctx, vm)
}

// ResizeVM godoc
// @Summary Resize a virtual machine
// @Schemes
// @Description Quota checked on the delta, symmetric for growth and shrink
// @Tags vm
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "vm id"
// @Param request body v1.ResizeVMRequest true "params"
// @Success 200 {object} v1.Response
// @Router /api/v1/vms/{id}/resize [post]
func (h *VirtualMachineHandler) ResizeVM(ctx *gin.Context) {
	vmId, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}
	req := new(v1.ResizeVMRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	if err := h.vmService.ResizeVM(ctx, GetUserIdFromCtx(ctx), vmId, req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, err, nil)
		return
	}
	v1.HandleSuccess(ctx, nil)
}

// StartVM godoc
// @Summary Start a virtual machine
// @Schemes
// @Description Capped by the team's active instance quota
// @Tags vm
// @Produce json
// @Security Bearer
// @Param id path int true "vm id"
// @Success 200 {object} v1.Response
// @Router /api/v1/vms/{id}/start [post]
func (h *VirtualMachineHandler) StartVM(ctx *gin.Context) {
	vmId, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}
	if err := h.vmService.StartVM(ctx, GetUserIdFromCtx(ctx), vmId); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, err, nil)
		return
	}
	v1.HandleSuccess(ctx, nil)
}

// StopVM godoc
// @Summary Stop a virtual machine
// @Schemes
// @Description
// @Tags vm
// @Produce json
// @Security Bearer
// @Param id path int true "vm id"
// @Success 200 {object} v1.Response
// @Router /api/v1/vms/{id}/stop [post]
func (h *VirtualMachineHandler) StopVM(ctx *gin.Context) {
	vmId, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}
	if err := h.vmService.StopVM(ctx, GetUserIdFromCtx(ctx), vmId); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, err, nil)
		return
	}
	v1.HandleSuccess(ctx, nil)
}

// DeleteVM godoc
// @Summary Delete a virtual machine
// @Schemes
// @Description
// @Tags vm
// @Produce json
// @Security Bearer
// @Param id path int true "vm id"
// @Success 200 {object} v1.Response
// @Router /api/v1/vms/{id} [delete]
func (h *VirtualMachineHandler) DeleteVM(ctx *gin.Context) {
	vmId, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}
	if err := h.vmService.DeleteVM(ctx, GetUserIdFromCtx(ctx), vmId); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, err, nil)
		return
	}
	v1.HandleSuccess(ctx, nil)
}

// AddOwners godoc
// @Summary Add owners to a virtual machine
// @Schemes
// @Description Only a current owner may share the VM
// @Tags vm
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "vm id"
// @Param request body v1.AddVMOwnersRequest true "params"
// @Success 200 {object} v1.Response
// @Router /api/v1/vms/{id}/owners [post]
func (h *VirtualMachineHandler) AddOwners(ctx *gin.Context) {
	vmId, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}
	req := new(v1.AddVMOwnersRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	if err := h.vmService.AddVMOwners(ctx, GetUserIdFromCtx(ctx), vmId, req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, err, nil)
		return
	}
	v1.HandleSuccess(ctx, nil)
}

// GetVM godoc
// @Summary Virtual machine detail
// @Schemes
// @Description
// @Tags vm
// @Produce json
// @Security Bearer
// @Param id path int true "vm id"
// @Success 200 {object} v1.VirtualMachineResponse
// @Router /api/v1/vms/{id} [get]
func (h *VirtualMachineHandler) GetVM(ctx *gin.Context) {
	vmId, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}
	vm, err := h.vmService.GetVM(ctx, vmId)
	if err != nil {
		v1.HandleError(ctx, http.StatusNotFound, err, nil)
		return
	}
	v1.HandleSuccess(ctx, vm)
}

// ListVMs godoc
// @Summary List virtual machines
// @Schemes
// @Description With team_id lists that team's VMs, otherwise the caller's owned VMs
// @Tags vm
// @Produce json
// @Security Bearer
// @Param team_id query int false "team id"
// @Success 200 {object} v1.Response
// @Router /api/v1/vms [get]
func (h *VirtualMachineHandler) ListVMs(ctx *gin.Context) {
	if teamIdStr := ctx.Query("team_id"); teamIdStr != "" {
		teamId, err := strconv.ParseInt(teamIdStr, 10, 64)
		if err != nil {
			v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
			return
		}
		vms, err := h.vmService.ListTeamVMs(ctx, teamId)
		if err != nil {
			v1.HandleError(ctx, http.StatusNotFound, err, nil)
			return
		}
		v1.HandleSuccess(ctx, vms)
		return
	}

	vms, err := h.vmService.ListOwnedVMs(ctx, GetUserIdFromCtx(ctx))
	if err != nil {
		v1.HandleError(ctx, http.StatusInternalServerError, err, nil)
		return
	}
	v1.HandleSuccess(ctx, vms)
}
