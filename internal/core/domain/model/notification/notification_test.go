package notification_test

import (
	"testing"
	"time"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/core/domain/model/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeIntent(t *testing.T) *notification.Intent {
	t.Helper()
	i, err := notification.NewIntent(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		notification.TypePickupScheduled,
		"Asha Rao", "asha@example.com",
		map[string]string{"pickup_date": "2025-03-01"},
		time.Date(2025, 2, 20, 8, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return i
}

func TestNewIntent(t *testing.T) {
	t.Run("creates pending intent", func(t *testing.T) {
		i := makeIntent(t)

		require.NoError(t, i.Validate())
		assert.Equal(t, notification.DeliveryPending, i.State())
		assert.Zero(t, i.Attempts())
		assert.Nil(t, i.SentAt())
		assert.Equal(t, map[string]string{"pickup_date": "2025-03-01"}, i.AdditionalData())
	})

	t.Run("copies additional data defensively", func(t *testing.T) {
		payload := map[string]string{"k": "v"}
		i, err := notification.NewIntent(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			notification.TypeComplaintApproved, "", "", payload, time.Now())
		require.NoError(t, err)

		payload["k"] = "changed"
		assert.Equal(t, "v", i.AdditionalData()["k"])
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := notification.NewIntent(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			notification.TypeUnknown, "", "", nil, time.Now())
		require.Error(t, err)
	})
}

func TestIntent_Delivery(t *testing.T) {
	t.Run("pending can be sent", func(t *testing.T) {
		i := makeIntent(t)
		sentAt := time.Date(2025, 2, 20, 8, 5, 0, 0, time.UTC)

		require.NoError(t, i.MarkSent(sentAt))
		assert.Equal(t, notification.DeliverySent, i.State())
		assert.Equal(t, 1, i.Attempts())
		require.NotNil(t, i.SentAt())
		assert.Equal(t, sentAt, *i.SentAt())
	})

	t.Run("sent cannot be sent again", func(t *testing.T) {
		i := makeIntent(t)
		require.NoError(t, i.MarkSent(time.Now()))
		require.Error(t, i.MarkSent(time.Now()))
	})

	t.Run("failures accumulate until max attempts", func(t *testing.T) {
		i := makeIntent(t)

		require.NoError(t, i.RecordFailure(3))
		assert.Equal(t, notification.DeliveryPending, i.State())
		require.NoError(t, i.RecordFailure(3))
		assert.Equal(t, notification.DeliveryPending, i.State())
		require.NoError(t, i.RecordFailure(3))
		assert.Equal(t, notification.DeliveryFailed, i.State())
		assert.Equal(t, 3, i.Attempts())

		require.Error(t, i.RecordFailure(3))
	})
}

func TestTypeFromString(t *testing.T) {
	for _, raw := range []string{
		"complaint_approved",
		"complaint_rejected",
		"pickup_scheduled",
		"pickup_completed",
		"replacement_created",
	} {
		tp, err := notification.TypeFromString(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, raw, tp.String())
	}

	_, err := notification.TypeFromString("order_shipped")
	require.Error(t, err)
}
