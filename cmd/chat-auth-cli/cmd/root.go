package cmd

import (
	"os"

	"github.com/chat-client/v2/core"
	"github.com/chat-client/v2/internal/config"
	"github.com/chat-client/v2/internal/logging"
	"github.com/chat-client/v2/services"
	"github.com/spf13/cobra"
)

// globalFlags override the environment configuration when set.
type globalFlags struct {
	apiURL    string
	csrfToken string
	store     string
	dataDir   string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "chat-auth-cli",
		Short: "Log in to or register with the chat backend",
		Long: `chat-auth-cli signs in to the chat backend's dj-rest-auth API and keeps
the issued token in the local client store.

Available commands:
  login       Log in with a username and password
  register    Create an account
  token       Print the stored token

Configuration is read from .env and CHAT_* environment variables; flags win.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(cmd.ErrOrStderr(), os.Getenv("LOG_FORMAT"), os.Getenv("LOG_LEVEL"))
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.apiURL, "api-url", "", "backend base URL (default $CHAT_API_URL or "+config.DefaultAPIURL+")")
	pf.StringVar(&flags.csrfToken, "csrf-token", "", "value for the csrftoken cookie")
	pf.StringVar(&flags.store, "store", "", "token store backend: sqlite or file")
	pf.StringVar(&flags.dataDir, "data-dir", "", "directory holding the token store")

	rootCmd.AddCommand(
		newLoginCmd(flags),
		newRegisterCmd(flags),
		newTokenCmd(flags),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute executes the root command
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (f *globalFlags) config() (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	if f.apiURL != "" {
		cfg.APIURL = f.apiURL
	}
	if f.csrfToken != "" {
		cfg.CSRFToken = f.csrfToken
	}
	if f.store != "" {
		cfg.TokenStore = f.store
	}
	if f.dataDir != "" {
		cfg.DataDir = f.dataDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// deps opens everything a submit command needs. The caller closes the store.
func (f *globalFlags) deps() (*config.Config, core.Store, *services.AuthService, error) {
	cfg, err := f.config()
	if err != nil {
		return nil, nil, nil, err
	}

	apiClient, err := services.NewApiClient(cfg.APIURL, cfg.CSRFCookie, cfg.HTTPTimeout)
	if err != nil {
		return nil, nil, nil, err
	}
	if cfg.CSRFToken != "" {
		apiClient.SetCookie(cfg.CSRFCookie, cfg.CSRFToken)
	}

	store, err := core.OpenStore(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, store, services.NewAuthService(apiClient, cfg.LoginPath, cfg.RegisterPath), nil
}
