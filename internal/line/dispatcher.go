// Package line adapts the LINE messaging platform. It parses
// signature-validated webhook callbacks, dispatches text-message events
// to the reply composer, and sends replies through the messaging API.
package line

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidRequest marks callbacks that fail parsing or signature
// validation and should be rejected with a client error.
var ErrInvalidRequest = errors.New("invalid webhook request")

// ReplyComposer produces the reply text for one inbound message.
type ReplyComposer interface {
	Reply(ctx context.Context, text string) string
}

// Dispatcher routes webhook events to the reply composer. Each
// actionable event gets exactly one reply to its reply token; all other
// event kinds are dropped silently.
type Dispatcher struct {
	channelSecret string
	composer      ReplyComposer
	replier       Replier
	log           *slog.Logger
}

// NewDispatcher creates a dispatcher that validates callbacks with the
// given channel secret.
func NewDispatcher(channelSecret string, composer ReplyComposer, replier Replier, log *slog.Logger) *Dispatcher {
	return &Dispatcher{
		channelSecret: channelSecret,
		composer:      composer,
		replier:       replier,
		log:           log.With("component", "line_dispatcher"),
	}
}

// HandleCallback parses one webhook callback and processes its events.
// Actionable events run concurrently with no ordering guarantee; the
// call returns after every event has finished, with the first reply
// failure if any occurred.
func (d *Dispatcher) HandleCallback(ctx context.Context, r *http.Request) error {
	callback, err := webhook.ParseRequest(d.channelSecret, r)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	d.log.DebugContext(ctx, "Received webhook callback", "event_count", len(callback.Events))

	g, gctx := errgroup.WithContext(ctx)
	for _, event := range callback.Events {
		messageEvent, ok := event.(webhook.MessageEvent)
		if !ok {
			continue
		}
		textMessage, ok := messageEvent.Message.(webhook.TextMessageContent)
		if !ok {
			continue
		}

		g.Go(func() error {
			return d.handleTextMessage(gctx, messageEvent, textMessage)
		})
	}

	return g.Wait()
}

// handleTextMessage composes and sends the reply for one text message.
// The composer absorbs all catalog-level failures, so the only error
// path left here is the reply transport itself.
func (d *Dispatcher) handleTextMessage(ctx context.Context, event webhook.MessageEvent, message webhook.TextMessageContent) error {
	log := d.log.With("user_id", userID(event.Source))
	log.InfoContext(ctx, "Processing text message", "text_preview", truncateString(message.Text, 50))

	replyText := d.composer.Reply(ctx, message.Text)

	if err := d.replier.Reply(ctx, event.ReplyToken, replyText); err != nil {
		log.ErrorContext(ctx, "Failed to send reply", "error", err)
		return fmt.Errorf("failed to send reply: %w", err)
	}

	log.DebugContext(ctx, "Reply sent", "reply_length", len(replyText))
	return nil
}

func userID(source webhook.SourceInterface) string {
	if user, ok := source.(webhook.UserSource); ok {
		return user.UserId
	}
	return ""
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return "..."
	}
	return s[:maxLen-3] + "..."
}
