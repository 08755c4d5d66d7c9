// Package notify posts compact activity messages to a Discord webhook.
// It is a pure event-bus subscriber: delivery failures are logged and
// dropped so a broken webhook can never block or fail an operation.
package notify

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/quinfall/companion/internal/domain"
	"github.com/quinfall/companion/internal/event"
	"github.com/quinfall/companion/internal/logger"
)

// webhookSender is the slice of discordgo.Session the notifier uses.
type webhookSender interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Notifier posts sync and recipe-change summaries to a Discord webhook.
// A Notifier built without credentials is valid but inert.
type Notifier struct {
	sender    webhookSender
	webhookID string
	token     string
}

// New creates a Notifier for the given webhook. Empty id or token
// yields a disabled notifier that ignores all events.
func New(webhookID, token string) (*Notifier, error) {
	if webhookID == "" || token == "" {
		logger.Info(LogMsgDisabled)
		return &Notifier{}, nil
	}

	// Webhook execution authenticates with the webhook token in the
	// URL, so the session itself carries no bot token.
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf(ErrFmtSessionFailed, err)
	}

	return &Notifier{
		sender:    session,
		webhookID: webhookID,
		token:     token,
	}, nil
}

// Enabled reports whether the notifier has a webhook to post to.
func (n *Notifier) Enabled() bool {
	return n != nil && n.sender != nil
}

// Subscribe registers the notifier's handlers on the event bus. A
// disabled notifier subscribes nothing.
func (n *Notifier) Subscribe(bus event.Bus) {
	if !n.Enabled() {
		return
	}
	bus.Subscribe(event.SyncCompleted, n.handleSyncCompleted)
	bus.Subscribe(event.RecipeUpdated, n.handleRecipeUpdated)
	logger.Info(LogMsgSubscribed)
}

func (n *Notifier) handleSyncCompleted(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.SyncCompletedPayload](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgBadPayload, "type", evt.Type, "error", err)
		return nil
	}

	n.send(ctx, formatSyncMessage(payload))
	return nil
}

func (n *Notifier) handleRecipeUpdated(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.RecipeUpdatedPayload](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgBadPayload, "type", evt.Type, "error", err)
		return nil
	}
	if len(payload.Diffs) == 0 {
		return nil
	}

	n.send(ctx, formatRecipeMessage(payload.Diffs))
	return nil
}

func (n *Notifier) send(ctx context.Context, content string) {
	_, err := n.sender.WebhookExecute(n.webhookID, n.token, false, &discordgo.WebhookParams{
		Content: content,
	})
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgSendFailed, "error", err)
		return
	}
	logger.FromContext(ctx).Debug(LogMsgSent, "length", len(content))
}

func formatSyncMessage(payload domain.SyncCompletedPayload) string {
	report := payload.Report
	msg := fmt.Sprintf(MsgFmtSyncCompleted, report.ItemsUpdated, report.ConflictsResolved, payload.Trigger)
	if len(report.SkippedLocations) > 0 {
		msg += fmt.Sprintf(MsgFmtSyncSkipped, len(report.SkippedLocations))
	}
	return msg
}

func formatRecipeMessage(diffs []domain.RecipeDiff) string {
	names := make([]string, 0, len(diffs))
	for _, d := range diffs {
		names = append(names, d.Name)
	}
	sort.Strings(names)

	listed := names
	var overflow int
	if len(listed) > MaxListedRecipes {
		overflow = len(listed) - MaxListedRecipes
		listed = listed[:MaxListedRecipes]
	}

	msg := fmt.Sprintf(MsgFmtRecipesChanged, len(names), strings.Join(listed, ", "))
	if overflow > 0 {
		msg += fmt.Sprintf(MoreRecipesSuffix, overflow)
	}
	return msg
}
