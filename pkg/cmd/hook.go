package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gitops-tools/gh-resources/pkg/git"
)

func makeHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "manage repository and organization hooks",
	}
	cmd.PersistentFlags().Int64(
		"id",
		0,
		"ID of the hook",
	)
	logIfError(cmd.MarkPersistentFlagRequired("id"))

	cmd.AddCommand(makeHookActionCmd("ping", "send a ping event to the hook", func(ctx context.Context, h *git.Hook) error {
		return h.Ping(ctx)
	}))
	cmd.AddCommand(makeHookActionCmd("delete", "delete the hook", func(ctx context.Context, h *git.Hook) error {
		return h.Delete(ctx)
	}))
	cmd.AddCommand(makeHookEventsCmd())
	return cmd
}

// hook returns the hook identified by the --id flag, without fetching it.
func hook(s *session, cmd *cobra.Command) (*git.Hook, error) {
	id, _ := cmd.Flags().GetInt64("id")
	scope, err := hookScope(s.client)
	if err != nil {
		return nil, err
	}
	return git.NewHook(scope, id), nil
}

func makeHookActionCmd(use, short string, action func(context.Context, *git.Hook) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := newSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.closeInto(&err)
			h, err := hook(s, cmd)
			if err != nil {
				return err
			}
			if err := action(cmd.Context(), h); err != nil {
				s.log.Errorf("error running hook %s: %s", use, err)
				return err
			}
			s.log.Infow("completed hook "+use, "id", h.ID)
			return nil
		},
	}
}

func makeHookEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "list the events the hook is subscribed to",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := newSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.closeInto(&err)
			id, _ := cmd.Flags().GetInt64("id")
			scope, err := hookScope(s.client)
			if err != nil {
				return err
			}

			h, err := git.GetHook(cmd.Context(), scope, id)
			if err != nil {
				s.log.Errorf("error fetching hook: %s", err)
				return err
			}
			events, err := h.Events()
			if err != nil {
				return err
			}
			return printYAML(s, cmd.OutOrStdout(), events.Strings())
		},
	}
}
