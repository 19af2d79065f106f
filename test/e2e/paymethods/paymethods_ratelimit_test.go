package paymethods_test

import (
	"testing"

	"github.com/aussiebroadwan/paymethods/pkg/paysdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitWrites verifies mutations are limited per acting user.
// The write profile allows a burst of 10.
func TestRateLimitWrites(t *testing.T) {
	baseURL, cleanup := setupServiceContainerWithDefaultRateLimits(t)
	defer cleanup()

	ctx := t.Context()
	client := paysdk.NewSDKClient(baseURL)

	var lastErr error
	for i := range 11 {
		_, err := client.AddPaymentMethod(ctx, parentID, parentID, "Visa", "")
		if i < 10 {
			require.NoError(t, err, "request %d should not be limited", i+1)
		} else {
			lastErr = err
		}
	}

	require.Error(t, lastErr)
	require.ErrorIs(t, lastErr, paysdk.ErrRemoteUnavailable)

	var apiErr *paysdk.APIError
	require.ErrorAs(t, lastErr, &apiErr)
	require.Equal(t, paysdk.ErrorCodeRateLimited, apiErr.Code)

	// Another user is tracked separately.
	require.NoError(t, client.GrantAccess(ctx, "other-parent", "other-parent", "someone"))
}
