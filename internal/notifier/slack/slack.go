package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mkrogh/fantasyliga/internal/leaderboard"
	"github.com/mkrogh/fantasyliga/internal/metrics"
	"github.com/mkrogh/fantasyliga/internal/notifier"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// Implement the Notifier interface

func (s *Notifier) SendReconcileSummary(summary notifier.RunSummary, dryRun bool) error {
	msg := s.formatReconcileSummary(summary)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendLeaderboard(entries []leaderboard.Entry, dryRun bool) error {
	msg := s.formatLeaderboard(entries)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// formatReconcileSummary creates the Slack message for a finished
// reconciliation run using Block Kit.
func (s *Notifier) formatReconcileSummary(summary notifier.RunSummary) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header - The Header block itself provides bolding. No asterisks needed.
	headerText := slack.NewTextBlockObject("plain_text", "⚽ Weekly points reconciled! ⚽", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	// Details - Use newlines for clear separation.
	detailsText := fmt.Sprintf("Lineups scored: %d\nContributions: %d\nSkipped slots: %d",
		summary.Selections,
		summary.Contributions,
		summary.SkippedSlots,
	)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	if summary.StoreErrors > 0 {
		warningText := fmt.Sprintf("⚠️ %d user(s) could not be persisted. Check the logs.", summary.StoreErrors)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", warningText, true, false), nil, nil))
	}

	// Context - For simpler, single-line info.
	contextText := fmt.Sprintf("Run %s • took %s", summary.RunID, summary.Duration.Round(time.Millisecond))
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", contextText, true, false)))

	return slack.NewBlockMessage(blocks...)
}

// formatLeaderboard creates a Slack message to display the team leaderboard.
func (s *Notifier) formatLeaderboard(entries []leaderboard.Entry) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header
	headerText := slack.NewTextBlockObject("plain_text", "🏆 Team Leaderboard 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(entries) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No teams have scored yet. Validate your lineups!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	// Team ranks
	for _, entry := range entries {
		var medal string
		switch entry.Rank {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		}

		entryText := fmt.Sprintf("%d. %s %s\n> Cost/Point: %.2f | Points: %.1f | Budget: %.0f",
			entry.Rank,
			medal,
			entry.TeamName,
			entry.CostPerPoint,
			entry.Points,
			entry.Budget,
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", entryText, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}
