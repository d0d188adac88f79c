package fetcher

import (
	"fmt"
	"log/slog"
	"strings"

	"geturl/internal/pkg/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

/* command configuration */
type configFetch struct {
	url      string
	logLevel slog.Level
}

// NewCommand returns the geturl command. Standard output carries nothing but
// the response body, so usage text, banners and logs all go to standard error.
func NewCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	configFetch := configFetch{}
	cmdFetch := &cobra.Command{
		Use:   FetchUse,
		Short: "Fetch a URL and write the response body to standard output",
		Long: "Issue a single HTTP(S) GET for the given URL and write the raw response body to standard output.\n" +
			"Redirects are followed, there is no timeout and the system trust store is used.",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
				return err
			}
			return nil
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(v.GetString(LogLevel))
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), FetchFailed)
				return err
			}
			configFetch.url = args[0]
			configFetch.logLevel = level

			// Init logger
			slog.SetDefault(logging.New(cmd.ErrOrStderr(), configFetch.logLevel))

			err = fetchURL(cmd.OutOrStdout(), configFetch)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), FetchFailed)
				return err
			}

			slog.Info(FetchSucceeded)
			return nil
		},
	}
	cmdFetch.Flags().StringP(LogLevel, "l", DefaultLogLevel, "Diagnostic log level on standard error: debug/info/warn/error (optional)")
	v.BindPFlag(LogLevel, cmdFetch.Flags().Lookup(LogLevel))

	return cmdFetch
}
