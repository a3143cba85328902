package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/alpenpass"
	"github.com/fwojciec/alpenpass/mock"
	alpenslog "github.com/fwojciec/alpenpass/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingPassService(t *testing.T) {
	t.Parallel()

	passes := []*alpenpass.Pass{
		{Name: "Albulapass", Status: "Open"},
		{Name: "Furkapass", Status: "Closed"},
	}
	inner := &mock.PassService{
		FindPassesFn: func(_ context.Context) ([]*alpenpass.Pass, error) {
			return passes, nil
		},
		FindPassByNameFn: func(_ context.Context, name string) (*alpenpass.Pass, error) {
			return nil, alpenpass.Errorf(alpenpass.ENOTFOUND, "pass %q not found", name)
		},
		FindOpenPassesFn: func(_ context.Context) ([]*alpenpass.Pass, error) {
			return passes[:1], nil
		},
		FindPassesWithRestrictionsFn: func(_ context.Context) ([]*alpenpass.Pass, error) {
			return passes[1:], nil
		},
	}

	t.Run("logs find passes with count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		svc := alpenslog.NewLoggingPassService(inner, slog.New(slog.NewTextHandler(&buf, nil)))

		got, err := svc.FindPasses(context.Background())

		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Contains(t, buf.String(), `msg="find passes"`)
		assert.Contains(t, buf.String(), "count=2")
		assert.Contains(t, buf.String(), "duration=")
	})

	t.Run("logs failed lookup", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		svc := alpenslog.NewLoggingPassService(inner, slog.New(slog.NewTextHandler(&buf, nil)))

		_, err := svc.FindPassByName(context.Background(), "Stelvio")

		require.Error(t, err)
		assert.Contains(t, buf.String(), `msg="find pass"`)
		assert.Contains(t, buf.String(), "name=Stelvio")
		assert.Contains(t, buf.String(), "found=false")
		assert.Contains(t, buf.String(), "not_found")
	})

	t.Run("logs filtered queries", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		svc := alpenslog.NewLoggingPassService(inner, slog.New(slog.NewTextHandler(&buf, nil)))

		open, err := svc.FindOpenPasses(context.Background())
		require.NoError(t, err)
		restricted, err := svc.FindPassesWithRestrictions(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "Albulapass", open[0].Name)
		assert.Equal(t, "Furkapass", restricted[0].Name)
		assert.Contains(t, buf.String(), `msg="find open passes"`)
		assert.Contains(t, buf.String(), `msg="find restricted passes"`)
	})
}
