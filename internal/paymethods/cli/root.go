// Package cli implements paymethodsctl, a terminal front-end for the payment
// methods service.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/paymethods/pkg/paysdk"
	"github.com/aussiebroadwan/paymethods/pkg/registry"
	"github.com/aussiebroadwan/paymethods/pkg/slogx"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errNoParent = errors.New("parent id is required (--parent or PAYMETHODS_PARENT)")

// session is the state shared by the subcommands of one invocation.
type session struct {
	v   *viper.Viper
	cfg Config

	logger *slog.Logger
	client *paysdk.SDKClient
	redis  *redis.Client
}

// NewRootCmd builds the paymethodsctl command tree.
func NewRootCmd(version string) *cobra.Command {
	s := &session{}

	root := &cobra.Command{
		Use:           "paymethodsctl",
		Short:         "Manage the payment methods of a parent account",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.open(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return s.close()
		},
	}

	addConfigFlags(root.PersistentFlags())

	root.AddCommand(
		newListCmd(s),
		newAddCmd(s),
		newActivateCmd(s),
		newDeleteCmd(s),
		newGrantCmd(s),
		newGrantsCmd(s),
		newHealthCmd(s),
	)
	return root
}

func (s *session) open(cmd *cobra.Command) error {
	v, err := newViper(cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	s.v = v

	path, _ := cmd.Root().PersistentFlags().GetString("config")
	if path == "" {
		path = v.GetString("config")
	}
	cfg, err := loadConfig(v, path)
	if err != nil {
		return err
	}
	s.cfg = cfg

	s.logger = slogx.New(slogx.Config{
		Service: "paymethodsctl",
		Level:   cfg.LogLevel,
		Format:  "text",
		Output:  cmd.ErrOrStderr(),
	})

	s.client = paysdk.NewSDKClient(cfg.Server)
	if cfg.Timeout > 0 {
		s.client.HTTPClient.Timeout = cfg.Timeout
	}
	return nil
}

func (s *session) close() error {
	if s.redis == nil {
		return nil
	}
	err := s.redis.Close()
	s.redis = nil
	return err
}

// newRegistry returns a registry backed by the Redis list cache when one is
// configured, and by process memory otherwise.
func (s *session) newRegistry(ctx context.Context) (*registry.Registry, error) {
	opts := registry.Options{Logger: s.logger}

	if s.cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     s.cfg.Redis.Addr,
			Password: s.cfg.Redis.Password,
			DB:       s.cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", s.cfg.Redis.Addr, err)
		}
		s.redis = client
		opts.Cache = registry.NewRedisCache(client, s.cfg.Redis.Prefix, s.cfg.Redis.TTL)
	}

	return registry.New(s.client, opts), nil
}

// workflow loads the parent's list through the cache.
func (s *session) workflow(ctx context.Context) (*registry.Workflow, error) {
	if s.cfg.Parent == "" {
		return nil, errNoParent
	}

	reg, err := s.newRegistry(ctx)
	if err != nil {
		return nil, err
	}

	wf := registry.NewWorkflow(reg, s.cfg.User, s.cfg.Parent)
	if err := wf.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load payment methods: %w", err)
	}
	return wf, nil
}
