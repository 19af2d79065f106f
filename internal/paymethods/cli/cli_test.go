package cli

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	pmhttp "github.com/aussiebroadwan/paymethods/internal/paymethods/http"
	"github.com/aussiebroadwan/paymethods/internal/paymethods/service"
	"github.com/aussiebroadwan/paymethods/internal/paymethods/store/drivers/sqlite"
	"github.com/aussiebroadwan/paymethods/pkg/paysdk"
	"github.com/aussiebroadwan/paymethods/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func startService(t *testing.T) string {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	router := pmhttp.NewRouter("test", st, slogx.Discard())
	router.PaymentMethodService = &service.PaymentMethodService{Store: st}
	router.GrantService = &service.GrantService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv.URL
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd("test")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func methodIDs(t *testing.T, url, parent string) []paysdk.PaymentMethod {
	t.Helper()

	methods, err := paysdk.NewSDKClient(url).ListPaymentMethods(context.Background(), parent)
	require.NoError(t, err)
	return methods
}

func TestCommandsAgainstService(t *testing.T) {
	url := startService(t)
	base := []string{"--server", url, "--parent", "P1"}
	with := func(args ...string) []string { return append(append([]string{}, args...), base...) }

	out, err := run(t, with("list")...)
	require.NoError(t, err)
	require.Contains(t, out, "Payment Methods")
	require.Contains(t, out, "Manage and select your preferred payment options")
	require.Contains(t, out, "No payment methods yet.")

	out, err = run(t, with("add", " ", "Visa", " ")...)
	require.NoError(t, err)
	require.Contains(t, out, "Visa")
	require.Contains(t, out, "Inactive")

	_, err = run(t, with("add", "Amex")...)
	require.NoError(t, err)

	methods := methodIDs(t, url, "P1")
	require.Len(t, methods, 2)
	require.Equal(t, "Visa", methods[0].Label)
	require.NotEmpty(t, methods[0].CreatedAt, "the submit time is recorded")

	out, err = run(t, with("activate", methods[1].ID)...)
	require.NoError(t, err)
	require.Contains(t, out, "delete (disabled: active method)")

	_, err = run(t, with("delete", methods[1].ID)...)
	require.ErrorContains(t, err, "the active payment method cannot be deleted")

	out, err = run(t, with("delete", methods[0].ID)...)
	require.NoError(t, err)
	require.NotContains(t, out, "Visa")

	_, err = run(t, with("activate", methods[0].ID)...)
	require.ErrorContains(t, err, "payment method no longer exists")
}

func TestAddRejectsBlankLabel(t *testing.T) {
	url := startService(t)

	_, err := run(t, "add", "   ", "--server", url, "--parent", "P1")
	require.ErrorContains(t, err, "label must not be empty")
	require.Empty(t, methodIDs(t, url, "P1"))
}

func TestParentRequired(t *testing.T) {
	url := startService(t)

	_, err := run(t, "list", "--server", url)
	require.ErrorIs(t, err, errNoParent)
}

func TestGrantCommands(t *testing.T) {
	url := startService(t)

	_, err := run(t, "add", "Visa", "--server", url, "--parent", "P1", "--user", "bob")
	require.ErrorContains(t, err, "permission denied")

	out, err := run(t, "grant", "bob", "--server", url, "--parent", "P1")
	require.NoError(t, err)
	require.Contains(t, out, "bob may now manage payment methods of P1")

	out, err = run(t, "grants", "--server", url, "--parent", "P1")
	require.NoError(t, err)
	require.Contains(t, out, "bob")

	_, err = run(t, "add", "Visa", "--server", url, "--parent", "P1", "--user", "bob")
	require.NoError(t, err)
}

func TestHealthCommand(t *testing.T) {
	url := startService(t)

	out, err := run(t, "health", "--server", url)
	require.NoError(t, err)
	require.Contains(t, out, "status: ok")
	require.Contains(t, out, "database: ok")
}

func TestConfigFromEnvAndFile(t *testing.T) {
	url := startService(t)

	path := filepath.Join(t.TempDir(), "paymethods.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: "+url+"\nparent: P9\n"), 0o600))

	_, err := run(t, "add", "Visa", "--config", path)
	require.NoError(t, err)
	require.Len(t, methodIDs(t, url, "P9"), 1)

	// Environment overrides the file.
	t.Setenv("PAYMETHODS_PARENT", "P8")
	_, err = run(t, "add", "Amex", "--config", path)
	require.NoError(t, err)
	require.Len(t, methodIDs(t, url, "P8"), 1)

	// Flags override the environment.
	_, err = run(t, "add", "Discover", "--config", path, "--parent", "P7")
	require.NoError(t, err)
	require.Len(t, methodIDs(t, url, "P7"), 1)
}

func TestRedisCacheIsShared(t *testing.T) {
	url := startService(t)
	mr := miniredis.RunT(t)

	args := func(cmd ...string) []string {
		return append(cmd, "--server", url, "--parent", "P1", "--redis-addr", mr.Addr(), "--redis-prefix", "test:")
	}

	_, err := run(t, args("add", "Visa")...)
	require.NoError(t, err)
	require.True(t, mr.Exists("test:P1"), "the refreshed list is cached")

	// A change made behind the cache's back is hidden until a fresh read.
	_, err = paysdk.NewSDKClient(url).AddPaymentMethod(context.Background(), "P1", "P1", "Amex", "")
	require.NoError(t, err)

	out, err := run(t, args("list")...)
	require.NoError(t, err)
	require.NotContains(t, out, "Amex")

	out, err = run(t, args("list", "--fresh")...)
	require.NoError(t, err)
	require.Contains(t, out, "Amex")
}

func TestRedisUnavailable(t *testing.T) {
	url := startService(t)

	_, err := run(t, "list", "--server", url, "--parent", "P1", "--redis-addr", "127.0.0.1:1")
	require.ErrorContains(t, err, "failed to connect to redis")
}

func TestRenderUnknownCreatedAt(t *testing.T) {
	url := startService(t)

	_, err := paysdk.NewSDKClient(url).AddPaymentMethod(context.Background(), "P1", "P1", "Legacy", "")
	require.NoError(t, err)

	out, err := run(t, "list", "--server", url, "--parent", "P1")
	require.NoError(t, err)

	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Legacy") {
			require.Contains(t, line, "Created unknown")
			require.Contains(t, line, "activate, delete")
			return
		}
	}
	t.Fatal("row for Legacy not rendered")
}
