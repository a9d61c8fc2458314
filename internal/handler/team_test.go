package handler

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gavv/httpexpect/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"

	v1 "teamlab/api/v1"
	"teamlab/pkg/log"
	mock_service "teamlab/test/mocks/service"
)

func newTestLogger(t *testing.T) *log.Logger {
	t.Helper()
	conf := viper.New()
	conf.Set("env", "test")
	conf.Set("log.log_level", "error")
	conf.Set("log.encoding", "console")
	conf.Set("log.log_file_name", filepath.Join(t.TempDir(), "test.log"))
	return log.NewLog(conf)
}

func TestTeamHandler_ResolveTokens(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	teamService := mock_service.NewMockTeamService(ctrl)
	teamService.EXPECT().ResolveConfirmToken(gomock.Any(), "tok-live").Return(true, nil)
	teamService.EXPECT().ResolveConfirmToken(gomock.Any(), "tok-gone").Return(false, nil)
	teamService.EXPECT().ResolveRejectToken(gomock.Any(), "tok-live").Return(true, nil)

	h := NewTeamHandler(NewHandler(newTestLogger(t)), teamService)
	engine := gin.New()
	engine.GET("/api/v1/teams/confirm/:token", h.ConfirmToken)
	engine.GET("/api/v1/teams/reject/:token", h.RejectToken)
	srv := httptest.NewServer(engine)
	defer srv.Close()

	e := httpexpect.Default(t, srv.URL)

	e.GET("/api/v1/teams/confirm/tok-live").
		Expect().Status(http.StatusOK).
		JSON().Object().Value("data").Object().Value("resolved").Boolean().IsTrue()

	// a consumed or unknown token is a 200 with resolved=false, not an error
	e.GET("/api/v1/teams/confirm/tok-gone").
		Expect().Status(http.StatusOK).
		JSON().Object().Value("data").Object().Value("resolved").Boolean().IsFalse()

	e.GET("/api/v1/teams/reject/tok-live").
		Expect().Status(http.StatusOK).
		JSON().Object().Value("data").Object().Value("resolved").Boolean().IsTrue()
}

func TestTeamHandler_ProposeTeam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	teamService := mock_service.NewMockTeamService(ctrl)
	teamService.EXPECT().
		ProposeTeam(gomock.Any(), &v1.ProposeTeamRequest{
			CourseId:  1,
			Name:      "rocket",
			MemberIds: []string{"s1", "s2"},
		}).
		Return(&v1.TeamData{
			Id:           7,
			Name:         "rocket",
			CourseId:     1,
			Status:       "pending",
			PendingCount: 2,
			MemberIds:    []string{"s1", "s2"},
		}, nil)

	h := NewTeamHandler(NewHandler(newTestLogger(t)), teamService)
	engine := gin.New()
	engine.POST("/api/v1/teams", h.ProposeTeam)
	srv := httptest.NewServer(engine)
	defer srv.Close()

	e := httpexpect.Default(t, srv.URL)

	data := e.POST("/api/v1/teams").
		WithJSON(map[string]interface{}{
			"course_id":  1,
			"name":       "rocket",
			"member_ids": []string{"s1", "s2"},
		}).
		Expect().Status(http.StatusOK).
		JSON().Object().Value("data").Object()
	data.Value("status").String().IsEqual("pending")
	data.Value("pending_count").Number().IsEqual(2)

	// missing fields never reach the service
	e.POST("/api/v1/teams").
		WithJSON(map[string]interface{}{"name": "rocket"}).
		Expect().Status(http.StatusBadRequest)
}

func TestTeamHandler_ProposeTeamError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	teamService := mock_service.NewMockTeamService(ctrl)
	teamService.EXPECT().
		ProposeTeam(gomock.Any(), gomock.Any()).
		Return(nil, v1.ErrTeamCardinality)

	h := NewTeamHandler(NewHandler(newTestLogger(t)), teamService)
	engine := gin.New()
	engine.POST("/api/v1/teams", h.ProposeTeam)
	srv := httptest.NewServer(engine)
	defer srv.Close()

	e := httpexpect.Default(t, srv.URL)
	e.POST("/api/v1/teams").
		WithJSON(map[string]interface{}{
			"course_id":  1,
			"name":       "solo",
			"member_ids": []string{"s1"},
		}).
		Expect().Status(http.StatusBadRequest).
		JSON().Object().Value("message").String().IsEqual(v1.ErrTeamCardinality.Error())
}
