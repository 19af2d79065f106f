package app

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/paymethods/pkg/paysdk"
	"github.com/stretchr/testify/require"
)

func TestApplicationServesAPI(t *testing.T) {
	application, err := New(Config{
		DatabaseFile:        ":memory:",
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "text",
		Port:                0,
		ShutdownGracePeriod: time.Second,
		AuditInterval:       time.Hour,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.db.Close() })

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)

	ctx := context.Background()
	client := paysdk.NewSDKClient(srv.URL)

	health, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, BuildVersion, health.Version)

	m, err := client.AddPaymentMethod(ctx, "P1", "P1", "Visa", "")
	require.NoError(t, err)
	_, err = client.SetActivePaymentMethod(ctx, "P1", "P1", m.ID)
	require.NoError(t, err)

	violations, err := application.auditService.RunOnce(ctx)
	require.NoError(t, err)
	require.Zero(t, violations)
}
