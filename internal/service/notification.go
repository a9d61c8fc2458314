package service

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"teamlab/internal/model"
	"teamlab/pkg/log"
	"teamlab/pkg/mail"
)

// NotificationService decides what to send and to whom; delivery itself is
// fire-and-forget through mail.Sender. Callers invoke it only after their
// critical section has committed, so a failed send never rolls anything back.
type NotificationService interface {
	NotifyTeamProposal(course *model.Course, team *model.Team, members []*model.User, tokens []*model.ConfirmationToken)
	ConfirmLink(tokenId string) string
	RejectLink(tokenId string) string
}

func NewNotificationService(
	service *Service,
	sender mail.Sender,
	conf *viper.Viper,
	logger *log.Logger,
) NotificationService {
	return &notificationService{
		sender:  sender,
		baseURL: conf.GetString("app.base_url"),
		Service: service,
		logger:  logger,
	}
}

type notificationService struct {
	sender  mail.Sender
	baseURL string
	*Service
	logger *log.Logger
}

func (s *notificationService) ConfirmLink(tokenId string) string {
	return fmt.Sprintf("%s/api/v1/teams/confirm/%s", s.baseURL, tokenId)
}

func (s *notificationService) RejectLink(tokenId string) string {
	return fmt.Sprintf("%s/api/v1/teams/reject/%s", s.baseURL, tokenId)
}

func (s *notificationService) NotifyTeamProposal(course *model.Course, team *model.Team, members []*model.User, tokens []*model.ConfirmationToken) {
	byStudent := make(map[string]*model.ConfirmationToken, len(tokens))
	for _, t := range tokens {
		byStudent[t.StudentId] = t
	}

	for _, member := range members {
		token, ok := byStudent[member.UserId]
		if !ok {
			continue
		}
		subject := fmt.Sprintf("Team invitation: %s (%s)", team.Name, course.Name)
		body := fmt.Sprintf(
			"You have been proposed as a member of team %q for course %q.\n\n"+
				"Confirm: %s\nReject:  %s\n\n"+
				"The invitation expires at %s. If any member rejects or lets the "+
				"invitation expire, the whole team is discarded.\n",
			team.Name, course.Name,
			s.ConfirmLink(token.Id), s.RejectLink(token.Id),
			token.ExpiresAt.Format("2006-01-02 15:04 MST"),
		)
		go func(to string) {
			if err := s.sender.Send(to, subject, body); err != nil {
				s.logger.Warn("team invitation mail failed",
					zap.String("to", to),
					zap.Int64("team_id", team.Id),
					zap.Error(err))
			}
		}(member.Email)
	}
}
