package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/alpenpass"
	"github.com/fwojciec/alpenpass/mock"
	alpenslog "github.com/fwojciec/alpenpass/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSnapshotService(t *testing.T) {
	t.Parallel()

	t.Run("logs save with changed flag", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.SnapshotService{
			SaveSnapshotFn: func(_ context.Context, _ *alpenpass.Snapshot) (bool, error) {
				return true, nil
			},
		}
		svc := alpenslog.NewLoggingSnapshotService(inner, slog.New(slog.NewTextHandler(&buf, nil)))

		changed, err := svc.SaveSnapshot(context.Background(), &alpenpass.Snapshot{Key: "furkapass"})

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Contains(t, buf.String(), `msg="save snapshot"`)
		assert.Contains(t, buf.String(), "key=furkapass")
		assert.Contains(t, buf.String(), "changed=true")
	})

	t.Run("logs delete error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.SnapshotService{
			DeleteSnapshotFn: func(_ context.Context, _ string) error {
				return errors.New("database is locked")
			},
		}
		svc := alpenslog.NewLoggingSnapshotService(inner, slog.New(slog.NewTextHandler(&buf, nil)))

		err := svc.DeleteSnapshot(context.Background(), "furkapass")

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="database is locked"`)
	})

	t.Run("delegates reads without logging", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.SnapshotService{
			FindSnapshotByKeyFn: func(_ context.Context, key string) (*alpenpass.Snapshot, error) {
				return &alpenpass.Snapshot{Key: key}, nil
			},
			FindSnapshotsFn: func(_ context.Context, _ alpenpass.SnapshotFilter) ([]*alpenpass.Snapshot, error) {
				return []*alpenpass.Snapshot{{Key: "albulapass"}}, nil
			},
		}
		svc := alpenslog.NewLoggingSnapshotService(inner, slog.New(slog.NewTextHandler(&buf, nil)))

		snap, err := svc.FindSnapshotByKey(context.Background(), "furkapass")
		require.NoError(t, err)
		snaps, err := svc.FindSnapshots(context.Background(), alpenpass.SnapshotFilter{})
		require.NoError(t, err)

		assert.Equal(t, "furkapass", snap.Key)
		assert.Len(t, snaps, 1)
		assert.Empty(t, buf.String())
	})
}
