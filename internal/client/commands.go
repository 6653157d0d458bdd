package client

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-site-keeper/internal/adapter"
	"github.com/MKhiriev/go-site-keeper/internal/config"
	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/sitefile"
	"github.com/MKhiriev/go-site-keeper/internal/tui"
	"github.com/MKhiriev/go-site-keeper/models"
)

// NewTUIFactory returns a [UIFactory] backed by the bubbletea preview.
func NewTUIFactory(buildInfo models.AppBuildInfo, log *logger.Logger) UIFactory {
	return func(source tui.Source, publisher tui.Publisher) (UI, error) {
		ui, err := tui.New(source, publisher, buildInfo, log)
		if err != nil {
			return nil, err
		}
		return ui, nil
	}
}

// NewRootCommand builds the sitectl command tree. Persistent flags form the
// flag layer of the client configuration; flags left unset keep the values
// from the environment and the JSON file. A nil newUI selects the terminal
// preview.
func NewRootCommand(buildInfo models.AppBuildInfo, out io.Writer, newUI UIFactory) *cobra.Command {
	var (
		overrides config.StructuredConfig
		app       *App
	)

	root := &cobra.Command{
		Use:           "sitectl",
		Short:         "Validate, publish and preview site front-end configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.NewClientLogger("sitectl")

			cfg, err := config.GetClientConfig(&overrides)
			if err != nil {
				return fmt.Errorf("error getting configs: %w", err)
			}

			serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
			if err != nil {
				return fmt.Errorf("create server adapter: %w", err)
			}

			factory := newUI
			if factory == nil {
				factory = NewTUIFactory(buildInfo, log)
			}

			app = NewApp(cfg, serverAdapter, factory, buildInfo, cmd.OutOrStdout(), log)
			return nil
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVarP(&overrides.Adapter.HTTPAddress, "address", "a", "", "server address (env ADAPTER_ADDRESS)")
	flags.StringVar(&overrides.Adapter.Token, "token", "", "publisher token (env ADAPTER_TOKEN)")
	flags.DurationVar(&overrides.Adapter.RequestTimeout, "timeout", 0, "request timeout (env ADAPTER_REQUEST_TIMEOUT)")
	flags.DurationVar(&overrides.Workers.DebounceInterval, "debounce", 0, "watch debounce interval (env WORKERS_DEBOUNCE_INTERVAL)")
	flags.StringSliceVar(&overrides.Site.ExtraModules, "extra-module", nil, "additional module names accepted by local validation")
	flags.StringVar(&overrides.App.TokenSignKey, "token-sign-key", "", "key used by the token command (env APP_TOKEN_SIGN_KEY)")
	flags.StringVar(&overrides.App.LogLevel, "log-level", "", "log level (env APP_LOG_LEVEL)")
	flags.StringVarP(&overrides.JSONFilePath, "config", "c", "", "path to a JSON config file (env CONFIG)")

	current := func() *App { return app }
	root.AddCommand(
		newValidateCommand(current),
		newPublishCommand(current),
		newLatestCommand(current),
		newHistoryCommand(current),
		newHeadCommand(current),
		newWatchCommand(current),
		newPreviewCommand(current),
		newTokenCommand(current),
		newVersionCommand(current),
	)

	return root
}

func newValidateCommand(app func() *App) *cobra.Command {
	var (
		remote bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Assemble a site document and print the configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := sitefile.Format(output)
			if format != sitefile.FormatJSON && format != sitefile.FormatYAML {
				return fmt.Errorf("%w: %q", sitefile.ErrUnsupportedFormat, output)
			}
			return app().Validate(cmd.Context(), args[0], remote, format)
		},
	}
	cmd.Flags().BoolVar(&remote, "remote", false, "validate on the server instead of locally")
	cmd.Flags().StringVarP(&output, "output", "o", string(sitefile.FormatJSON), "output format: json or yaml")
	return cmd
}

func newPublishCommand(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "publish FILE",
		Short: "Publish a site document as a new revision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().Publish(cmd.Context(), args[0])
		},
	}
}

func newLatestCommand(app func() *App) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "latest",
		Short: "Print the latest published revision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app().Latest(cmd.Context(), id)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "print this revision instead of the latest")
	return cmd
}

func newHistoryCommand(app func() *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"revisions"},
		Short:   "List published revisions, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app().History(cmd.Context(), limit)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of revisions (server default when 0)")
	return cmd
}

func newHeadCommand(app func() *App) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "head",
		Short: "Print the rendered head fragments of a revision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app().Head(cmd.Context(), id)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "revision id (latest when empty)")
	return cmd
}

func newWatchCommand(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch FILE",
		Short: "Publish a site document on every change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().Watch(cmd.Context(), args[0])
		},
	}
}

func newPreviewCommand(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "preview FILE",
		Short: "Open the interactive preview of a site document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app().Preview(cmd.Context(), args[0])
		},
	}
}

func newTokenCommand(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "token SUBJECT",
		Short: "Mint a publisher token with the local sign key",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app().Token(args[0])
		},
	}
}

func newVersionCommand(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app().Version(cmd.Context())
		},
	}
}
