package booking

import (
	"context"
	"testing"
	"time"

	"crickbox/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandoffRunnerStageOrder(t *testing.T) {
	var seen []HandoffStage
	runner := HandoffRunner{
		Interval: time.Millisecond,
		OnStage:  func(s HandoffStage) { seen = append(seen, s) },
	}

	err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []HandoffStage{
		StageInitializing,
		StageEncrypting,
		StageRedirecting,
		StageAutoSubmit,
	}, seen)
}

func TestHandoffRunnerCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var seen []HandoffStage
	runner := HandoffRunner{
		Interval: 10 * time.Millisecond,
		OnStage: func(s HandoffStage) {
			seen = append(seen, s)
			if s == StageEncrypting {
				cancel()
			}
		},
	}

	err := runner.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []HandoffStage{StageInitializing, StageEncrypting}, seen)
	assert.NotContains(t, seen, StageAutoSubmit, "cancelled handoff must never auto-submit")
}

func TestRenderAutoSubmitForm(t *testing.T) {
	page, err := RenderAutoSubmitForm(models.HandoffPayload{
		SPURL:      "https://pay.example.com/submit",
		EncData:    "c2VhbGVk",
		ClientCode: "CB001",
	})
	require.NoError(t, err)

	assert.Contains(t, page, `method="POST"`)
	assert.Contains(t, page, `action="https://pay.example.com/submit"`)
	assert.Contains(t, page, `name="encData" value="c2VhbGVk"`)
	assert.Contains(t, page, `name="clientCode" value="CB001"`)
}
