package commands

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/Vijaykarthik1/tnstc-leave/internal/config"
	"github.com/Vijaykarthik1/tnstc-leave/internal/pkg/leaveapi"
	"github.com/Vijaykarthik1/tnstc-leave/internal/pkg/logging"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/session"
)

type rootFlags struct {
	configPath string
	apiURL     string
	stateDir   string
	verbose    bool
}

// NewRootCmd builds the leavectl command tree. Dependencies are created in
// PersistentPreRunE once flags are parsed.
func NewRootCmd(ctx context.Context, in io.Reader, out, errOut io.Writer) *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{Ctx: ctx, In: in, Out: out}
	var unsubscribe func()

	rootCmd := &cobra.Command{
		Use:           "leavectl",
		Short:         "TNSTC leave portal client",
		Long:          `Apply for leave, follow your requests and, as an admin, review them from the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			unsubscribe, err = initApp(app, flags, cmd.Flags(), errOut)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if unsubscribe != nil {
				unsubscribe()
			}
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", config.DefaultClientConfigPath(), "client config file")
	rootCmd.PersistentFlags().StringVar(&flags.apiURL, "api", "", "API base URL (overrides apiUrl in the config file)")
	rootCmd.PersistentFlags().StringVar(&flags.stateDir, "state-dir", "", "directory holding the signed-in session")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(LoginCmd(app))
	rootCmd.AddCommand(LogoutCmd(app))
	rootCmd.AddCommand(WhoAmICmd(app))
	rootCmd.AddCommand(PhotoCmd(app))
	rootCmd.AddCommand(ApplyCmd(app))
	rootCmd.AddCommand(HistoryCmd(app))
	rootCmd.AddCommand(CancelCmd(app))
	rootCmd.AddCommand(AdminCmd(app))
	return rootCmd
}

// initApp sets up logger, config, session store and API client
func initApp(app *AppContext, flags *rootFlags, fs *pflag.FlagSet, errOut io.Writer) (func(), error) {
	app.Logger = logging.InitLogger(errOut, flags.verbose)

	// The default config path may be absent; an explicit one must exist.
	cfg, err := config.LoadClient(flags.configPath, !fs.Changed("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if flags.apiURL != "" {
		cfg.APIURL = flags.apiURL
	}
	if flags.stateDir != "" {
		cfg.StateDir = flags.stateDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	app.Cfg = cfg
	app.Logger.Debug("Configuration loaded", zap.String("api_url", cfg.APIURL), zap.String("state_dir", cfg.StateDir))

	app.Store = session.NewStore(cfg.StateDir)
	unsubscribe := app.Store.Subscribe(func(sess session.Session, ok bool) {
		if ok {
			app.Logger.Debug("Session saved", zap.String("user_id", sess.User.ID), zap.String("role", string(sess.User.Role)))
			return
		}
		app.Logger.Debug("Session cleared")
	})

	app.API = leaveapi.NewClient(cfg.APIURL,
		leaveapi.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		leaveapi.WithTokenSource(func() string {
			sess, ok := app.Store.Load()
			if !ok {
				return ""
			}
			return sess.Token
		}),
	)
	return unsubscribe, nil
}
