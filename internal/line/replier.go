package line

import (
	"context"
	"fmt"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
)

// Replier sends exactly one text reply for a reply token.
type Replier interface {
	Reply(ctx context.Context, replyToken, text string) error
}

// apiReplier sends replies through the LINE messaging API.
type apiReplier struct {
	api *messaging_api.MessagingApiAPI
}

// NewReplier creates a Replier backed by the LINE messaging API.
func NewReplier(channelToken string) (Replier, error) {
	if channelToken == "" {
		return nil, fmt.Errorf("LINE channel token cannot be empty")
	}

	api, err := messaging_api.NewMessagingApiAPI(channelToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create LINE messaging client: %w", err)
	}

	return &apiReplier{api: api}, nil
}

func (r *apiReplier) Reply(_ context.Context, replyToken, text string) error {
	_, err := r.api.ReplyMessage(&messaging_api.ReplyMessageRequest{
		ReplyToken: replyToken,
		Messages: []messaging_api.MessageInterface{
			messaging_api.TextMessage{Text: text},
		},
	})
	if err != nil {
		return fmt.Errorf("reply message request failed: %w", err)
	}
	return nil
}
