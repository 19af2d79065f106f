package cli

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/aussiebroadwan/paymethods/pkg/registry"
	"github.com/spf13/cobra"
)

// describe turns registry errors into messages for the terminal.
func describe(action string, err error) error {
	switch {
	case errors.Is(err, registry.ErrInvalidInput):
		return fmt.Errorf("%s: label must not be empty", action)
	case errors.Is(err, registry.ErrMethodActive):
		return fmt.Errorf("%s: the active payment method cannot be deleted", action)
	case errors.Is(err, registry.ErrNotFound):
		return fmt.Errorf("%s: payment method no longer exists", action)
	case errors.Is(err, registry.ErrForbidden):
		return fmt.Errorf("%s: permission denied", action)
	case errors.Is(err, registry.ErrRemoteUnavailable):
		return fmt.Errorf("%s: could not reach the payment methods service: %w", action, err)
	default:
		return fmt.Errorf("%s: %w", action, err)
	}
}

func newListCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the parent's payment methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			wf, err := s.workflow(ctx)
			if err != nil {
				return err
			}

			fresh, _ := cmd.Flags().GetBool("fresh")
			if fresh {
				if err := wf.Reload(ctx); err != nil {
					return describe("refresh", err)
				}
			}
			return renderView(cmd.OutOrStdout(), wf.View())
		},
	}
	cmd.Flags().Bool("fresh", false, "bypass the list cache")
	return cmd
}

func newAddCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "add LABEL...",
		Short: "Add an inactive payment method",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			wf, err := s.workflow(ctx)
			if err != nil {
				return err
			}

			wf.Form.SetInput(strings.Join(args, " "))
			if _, err := wf.Form.Submit(ctx); err != nil {
				return describe("add", err)
			}
			return renderView(cmd.OutOrStdout(), wf.View())
		},
	}
}

func newActivateCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "activate METHOD_ID",
		Short: "Make a payment method the parent's active method",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			wf, err := s.workflow(ctx)
			if err != nil {
				return err
			}

			if err := wf.Activate(ctx, args[0]); err != nil {
				return describe("activate", err)
			}
			return renderView(cmd.OutOrStdout(), wf.View())
		},
	}
}

func newDeleteCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "delete METHOD_ID",
		Short: "Delete an inactive payment method",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			wf, err := s.workflow(ctx)
			if err != nil {
				return err
			}

			if err := wf.Delete(ctx, args[0]); err != nil {
				return describe("delete", err)
			}
			return renderView(cmd.OutOrStdout(), wf.View())
		},
	}
}

func newGrantCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "grant USER_ID",
		Short: "Allow another user to manage the parent's payment methods",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if s.cfg.Parent == "" {
				return errNoParent
			}

			if err := s.client.GrantAccess(cmd.Context(), s.cfg.User, s.cfg.Parent, args[0]); err != nil {
				return describe("grant", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s may now manage payment methods of %s\n", args[0], s.cfg.Parent)
			return nil
		},
	}
}

func newGrantsCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "grants",
		Short: "List users allowed to manage the parent's payment methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if s.cfg.Parent == "" {
				return errNoParent
			}

			grants, err := s.client.ListGrants(cmd.Context(), s.cfg.User, s.cfg.Parent)
			if err != nil {
				return describe("list grants", err)
			}

			out := cmd.OutOrStdout()
			if len(grants) == 0 {
				fmt.Fprintln(out, "No grants.")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "USER\tGRANTED BY\tGRANTED AT")
			for _, g := range grants {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", g.UserID, g.CreatedBy, g.CreatedAt)
			}
			return tw.Flush()
		},
	}
}

func newHealthCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the service's readiness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			health, err := s.client.GetReadiness(cmd.Context())
			if err != nil {
				return describe("health", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "status: %s\nversion: %s\nuptime: %s\n", health.Status, health.Version, health.Uptime)
			if health.Checks != nil {
				fmt.Fprintf(out, "database: %s\n", health.Checks.Database)
			}
			return nil
		},
	}
}
