package slack

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mkrogh/fantasyliga/internal/leaderboard"
	"github.com/mkrogh/fantasyliga/internal/metrics"
	"github.com/mkrogh/fantasyliga/internal/notifier"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	n := NewNotifierWithAPI(nil, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := n.sendMessage(message, true)
	require.NoError(t, err)
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	n := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	_, _, err := n.sendMessage(message, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.SlackNotifSent())
	assert.Equal(t, 0, metrics.SlackNotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	postMessageCalled := false
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	n := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := n.sendMessage(message, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 1, metrics.SlackNotifFailed())
}

// Test one of the public methods to ensure it calls the private sender.
func TestSendReconcileSummary_CallsSender(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	n := NewNotifierWithAPI(api, "C123", metrics)

	summary := notifier.RunSummary{
		RunID:         "run-1",
		Selections:    4,
		Contributions: 40,
		Duration:      3 * time.Second,
	}

	err := n.SendReconcileSummary(summary, false)
	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called via SendReconcileSummary")
}

func TestFormatReconcileSummary(t *testing.T) {
	n := &Notifier{channelID: "C123"}

	msg := n.formatReconcileSummary(notifier.RunSummary{
		RunID:         "run-1",
		Selections:    4,
		Contributions: 40,
		SkippedSlots:  1,
	})
	require.Len(t, msg.Blocks.BlockSet, 3, "header, details, context")
	_, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	assert.True(t, ok, "first block should be a header")

	// A run with store errors grows a warning block.
	msg = n.formatReconcileSummary(notifier.RunSummary{RunID: "run-2", StoreErrors: 2})
	require.Len(t, msg.Blocks.BlockSet, 4)
}

func TestFormatLeaderboard(t *testing.T) {
	n := &Notifier{channelID: "C123"}

	entries := []leaderboard.Entry{
		{UserID: "u1", TeamName: "Kuponklubben", Budget: 40, Points: 10, CostPerPoint: 4, Rank: 1},
		{UserID: "u2", TeamName: "Dyre Drenge", Budget: 100, Points: 10, CostPerPoint: 10, Rank: 2},
	}
	msg := n.formatLeaderboard(entries)
	require.Len(t, msg.Blocks.BlockSet, 3, "header plus one block per team")

	empty := n.formatLeaderboard(nil)
	require.Len(t, empty.Blocks.BlockSet, 2)
	section, ok := empty.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "No teams")
}
