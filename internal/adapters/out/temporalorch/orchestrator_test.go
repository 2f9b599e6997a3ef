package temporalorch_test

import (
	"encoding/base64"
	"io"
	"log/slog"
	"testing"

	"fulfillment/internal/adapters/out/temporalorch"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/mocks"
)

func TestOrchestrator_Resume(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("should complete the activity identified by the decoded token", func(t *testing.T) {
		raw := []byte("task-token-bytes")
		encoded := base64.StdEncoding.EncodeToString(raw)

		temporalClient := &mocks.Client{}
		temporalClient.On("CompleteActivity", t.Context(), raw, "payload", nil).Return(nil).Once()

		o := temporalorch.NewOrchestrator(temporalClient, log)
		require.NoError(t, o.Resume(t.Context(), encoded, "payload"))
		temporalClient.AssertExpectations(t)
	})

	t.Run("should reject an undecodable token as a state conflict", func(t *testing.T) {
		temporalClient := &mocks.Client{}

		o := temporalorch.NewOrchestrator(temporalClient, log)
		err := o.Resume(t.Context(), "not base64 !!!", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrStateConflict)
		temporalClient.AssertNotCalled(t, "CompleteActivity")
	})
}
