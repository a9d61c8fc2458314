package service

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"teamlab/internal/model"
	mock_mail "teamlab/test/mocks/mail"
)

func TestNotification_Links(t *testing.T) {
	svc := &notificationService{baseURL: "http://teamlab.local"}
	assert.Equal(t, "http://teamlab.local/api/v1/teams/confirm/tok1", svc.ConfirmLink("tok1"))
	assert.Equal(t, "http://teamlab.local/api/v1/teams/reject/tok1", svc.RejectLink("tok1"))
}

func TestNotifyTeamProposal_MailsEachInvitedMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mock_mail.NewMockSender(ctrl)

	got := make(chan string, 2)
	sender.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(to, subject, body string) error {
			got <- to
			return nil
		}).
		Times(2)

	svc := &notificationService{
		sender:  sender,
		baseURL: "http://teamlab.local",
		logger:  newTestLogger(t),
	}
	course := &model.Course{Id: 1, Name: "Operating Systems"}
	team := &model.Team{Id: 5, Name: "rocket", CourseId: 1}
	members := []*model.User{
		{UserId: "s1", Email: "s1@example.com"},
		{UserId: "s2", Email: "s2@example.com"},
		{UserId: "s3", Email: "s3@example.com"}, // no token, must be skipped
	}
	expiry := time.Date(2026, 5, 4, 13, 0, 0, 0, time.UTC)
	tokens := []*model.ConfirmationToken{
		{Id: "tok1", TeamId: 5, StudentId: "s1", ExpiresAt: expiry},
		{Id: "tok2", TeamId: 5, StudentId: "s2", ExpiresAt: expiry},
	}

	svc.NotifyTeamProposal(course, team, members, tokens)

	recipients := make(map[string]bool, 2)
	for i := 0; i < 2; i++ {
		select {
		case to := <-got:
			recipients[to] = true
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for mail delivery")
		}
	}
	assert.True(t, recipients["s1@example.com"])
	assert.True(t, recipients["s2@example.com"])
	ctrl.Finish()
}
