package events

import (
	"context"
	"fmt"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
	"github.com/acg-data/bizgenius-sub001/internal/usecase/interfaces"

	"github.com/slack-go/slack"
)

type messagePoster interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// SlackNotifier alerts an ops channel when a generation run fails. Other
// event types are ignored.
type SlackNotifier struct {
	api     messagePoster
	channel string
}

var _ interfaces.ISessionEventPublisher = (*SlackNotifier)(nil)

func NewSlackNotifier(token, channel string, opts ...slack.Option) *SlackNotifier {
	return &SlackNotifier{api: slack.New(token, opts...), channel: channel}
}

func (n *SlackNotifier) Publish(ctx context.Context, ev entities.SessionEvent) error {
	if ev.Type != entities.SessionEventFailed {
		return nil
	}
	_, _, err := n.api.PostMessageContext(ctx, n.channel, slack.MsgOptionText(failureMessage(ev), false))
	return err
}

func failureMessage(ev entities.SessionEvent) string {
	return fmt.Sprintf(":rotating_light: Report generation failed\nsession: %s\nuser: %s\nerror: %s", ev.SessionID, ev.UserID, ev.Error)
}
