package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "teamlab/api/v1"
	"teamlab/internal/service"
)

type TeamHandler struct {
	*Handler
	teamService service.TeamService
}

func NewTeamHandler(handler *Handler, teamService service.TeamService) *TeamHandler {
	return &TeamHandler{
		Handler:     handler,
		teamService: teamService,
	}
}

// ProposeTeam godoc
// @Summary Propose a team
// @Schemes
// @Description Creates the team pending and mails every proposed member a confirm/reject link
// @Tags team
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body v1.ProposeTeamRequest true "params"
// @Success 200 {object} v1.TeamResponse
// @Router /api/v1/teams [post]
func (h *TeamHandler) ProposeTeam(ctx *gin.Context) {
	req := new(v1.ProposeTeamRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	team, err := h.teamService.ProposeTeam(ctx, req)
	if err != nil {
		h.logger.WithContext(ctx).Error("teamService.ProposeTeam error", zap.Error(err))
		v1.HandleError(ctx, http.StatusBadRequest, err, nil)
		return
	}
	v1.HandleSuccess(ctx, team)
}

// ConfirmToken godoc
// @Summary Confirm a team invitation
// @Schemes
// @Description A consumed or unknown token reports resolved=false
// @Tags team
// @Produce json
// @Param token path string true "confirmation token"
// @Success 200 {object} v1.Response
// @Router /api/v1/teams/confirm/{token} [get]
func (h *TeamHandler) ConfirmToken(ctx *gin.Context) {
	resolved, err := h.teamService.ResolveConfirmToken(ctx, ctx.Param("token"))
	if err != nil {
		v1.HandleError(ctx, http.StatusInternalServerError, err, nil)
		return
	}
	v1.HandleSuccess(ctx, v1.ResolveTokenResponseData{Resolved: resolved})
}

// RejectToken godoc
// @Summary Reject a team invitation
// @Schemes
// @Description A single rejection discards the whole team
// @Tags team
// @Produce json
// @Param token path string true "confirmation token"
// @Success 200 {object} v1.Response
// @Router /api/v1/teams/reject/{token} [get]
func (h *TeamHandler) RejectToken(ctx *gin.Context) {
	resolved, err := h.teamService.ResolveRejectToken(ctx, ctx.Param("token"))
	if err != nil {
		v1.HandleError(ctx, http.StatusInternalServerError, err, nil)
		return
	}
	v1.HandleSuccess(ctx, v1.ResolveTokenResponseData{Resolved: resolved})
}

// GetTeam godoc
// @Summary Team detail with quota usage
// @Schemes
// @Description
// @Tags team
// @Produce json
// @Security Bearer
// @Param id path int true "team id"
// @Success 200 {object} v1.TeamDetailResponse
// @Router /api/v1/teams/{id} [get]
func (h *TeamHandler) GetTeam(ctx *gin.Context) {
	teamId, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}
	team, err := h.teamService.GetTeam(ctx, teamId)
	if err != nil {
		v1.HandleError(ctx, http.StatusNotFound, err, nil)
		return
	}
	v1.HandleSuccess(ctx, team)
}

// EvictTeam godoc
// @Summary Tear a team down
// @Schemes
// @Description Removes members, VMs, owner links and outstanding tokens
// @Tags team
// @Produce json
// @Security Bearer
// @Param id path int true "team id"
// @Success 200 {object} v1.Response
// @Router /api/v1/teams/{id} [delete]
func (h *TeamHandler) EvictTeam(ctx *gin.Context) {
	teamId, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}
	if err := h.teamService.EvictTeam(ctx, teamId); err != nil {
		v1.HandleError(ctx, http.StatusNotFound, err, nil)
		return
	}
	v1.HandleSuccess(ctx, nil)
}

// ListCourseTeams godoc
// @Summary Teams of a course
// @Schemes
// @Description
// @Tags team
// @Produce json
// @Security Bearer
// @Param id path int true "course id"
// @Success 200 {object} v1.Response
// @Router /api/v1/courses/{id}/teams [get]
func (h *TeamHandler) ListCourseTeams(ctx *gin.Context) {
	courseId, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}
	teams, err := h.teamService.ListCourseTeams(ctx, courseId)
	if err != nil {
		v1.HandleError(ctx, http.StatusNotFound, err, nil)
		return
	}
	v1.HandleSuccess(ctx, teams)
}
