package lark

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goto/approvals/domain"
	"github.com/goto/approvals/pkg/log"
	"github.com/goto/approvals/plugins/notifiers/message"
	lark "github.com/larksuite/oapi-sdk-go/v3"
	larkcore "github.com/larksuite/oapi-sdk-go/v3/core"
	larkim "github.com/larksuite/oapi-sdk-go/v3/service/im/v1"
)

const (
	ReceiveIDTypeEmail  = "email"
	ReceiveIDTypeOpenID = "open_id"
	ReceiveIDTypeUserID = "user_id"

	msgTypeText = "text"
)

type Config struct {
	AppID         string `mapstructure:"app_id" validate:"required"`
	AppSecret     string `mapstructure:"app_secret" validate:"required"`
	BaseURL       string `mapstructure:"base_url"`
	ReceiveIDType string `mapstructure:"receive_id_type" validate:"omitempty,oneof=email open_id user_id"`
}

type messageCreator interface {
	Create(ctx context.Context, req *larkim.CreateMessageReq, options ...larkcore.RequestOptionFunc) (*larkim.CreateMessageResp, error)
}

// Notifier sends notifications as lark direct messages
type Notifier struct {
	messages      messageCreator
	receiveIDType string
	renderer      *message.Renderer
	logger        log.Logger
}

func NewNotifier(config *Config, renderer *message.Renderer, logger log.Logger) (*Notifier, error) {
	if config.AppID == "" || config.AppSecret == "" {
		return nil, fmt.Errorf("app_id and app_secret are required")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = lark.LarkBaseUrl
	}
	client := lark.NewClient(config.AppID, config.AppSecret,
		lark.WithLogLevel(larkcore.LogLevelInfo),
		lark.WithEnableTokenCache(true),
		lark.WithOpenBaseUrl(baseURL),
	)

	return newNotifier(client.Im.Message, config.ReceiveIDType, renderer, logger), nil
}

func newNotifier(messages messageCreator, receiveIDType string, renderer *message.Renderer, logger log.Logger) *Notifier {
	if receiveIDType == "" {
		receiveIDType = ReceiveIDTypeEmail
	}
	return &Notifier{
		messages:      messages,
		receiveIDType: receiveIDType,
		renderer:      renderer,
		logger:        logger,
	}
}

func (n *Notifier) Notify(ctx context.Context, items []domain.Notification) []error {
	errs := make([]error, 0)
	for _, item := range items {
		n.logger.Debug(ctx, "sending lark notification", "user", item.User, "type", item.Message.Type, "labels", item.Labels)

		text, err := n.renderer.Render(item.Message)
		if err != nil {
			errs = append(errs, fmt.Errorf("error parsing message for user %q: %w", item.User, err))
			continue
		}
		if err := n.send(ctx, item.User, text); err != nil {
			errs = append(errs, fmt.Errorf("error sending lark message to user %q: %w", item.User, err))
		}
	}
	return errs
}

func (n *Notifier) send(ctx context.Context, receiveID, text string) error {
	content, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return err
	}

	req := larkim.NewCreateMessageReqBuilder().
		ReceiveIdType(n.receiveIDType).
		Body(larkim.NewCreateMessageReqBodyBuilder().
			ReceiveId(receiveID).
			MsgType(msgTypeText).
			Content(string(content)).
			Build()).
		Build()

	resp, err := n.messages.Create(ctx, req)
	if err != nil {
		return err
	}
	if !resp.Success() {
		return fmt.Errorf("lark api error: code=%d, msg=%s", resp.Code, resp.Msg)
	}
	return nil
}
