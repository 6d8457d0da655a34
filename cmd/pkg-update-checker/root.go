package main

import (
	"github.com/obentoo/pkg-update-checker/internal/checker"
	"github.com/obentoo/pkg-update-checker/internal/common/config"
	"github.com/obentoo/pkg-update-checker/internal/common/logger"
	"github.com/obentoo/pkg-update-checker/internal/common/output"
	"github.com/obentoo/pkg-update-checker/internal/common/version"
	"github.com/obentoo/pkg-update-checker/internal/gate"
	"github.com/spf13/cobra"
)

// options holds the raw flag values of one invocation
type options struct {
	pkg        string
	jail       string
	token      string
	user       string
	lockDir    string
	configFile string

	verbose bool
	quiet   bool
	noColor bool
	journal bool
	logFile bool
}

// usageError marks malformed command lines and unreadable config files
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func newRootCmd(checkerOpts ...checker.Option) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "pkg-update-checker -p PKG -t TOKEN -u USER [flags]",
		Short: "Notify via Pushover when a FreeBSD package has an update",
		Long: `Check whether a FreeBSD package (optionally inside a jail) has a newer
remote version and send one Pushover notification per update.

A lockfile named <lock-dir><pkg>_has_update suppresses repeat notifications
until the package is up to date again. Run it from cron or a systemd timer.

Examples:
  pkg-update-checker -p nginx -t APP_TOKEN -u USER_KEY
  pkg-update-checker --pkg=postgresql16-server --jail=db -t APP_TOKEN -u USER_KEY
  pkg-update-checker -p nginx -l /var/db/pkg-update-checker/ -c /usr/local/etc/puc.toml`,
		Version:       version.Short(),
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureLogging(opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				logger.Debug("ignoring positional arguments: %v", args)
			}
			return runCheck(cmd, opts, checkerOpts)
		},
	}
	rootCmd.SetVersionTemplate(version.Info() + "\n")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.pkg, "pkg", "p", "", "package name")
	flags.StringVarP(&opts.jail, "jail", "j", "", "jail name")
	flags.StringVarP(&opts.token, "po-token", "t", "", "Pushover token")
	flags.StringVarP(&opts.user, "po-user", "u", "", "Pushover user")
	flags.StringVarP(&opts.lockDir, "po-lock-dir", "l", "", "directory for Pushover lockfiles, with trailing separator")
	flags.StringVarP(&opts.configFile, "config", "c", "", "TOML or YAML file with defaults for the flags above")

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&opts.journal, "journal", false, "Also log to the systemd journal")
	rootCmd.PersistentFlags().BoolVar(&opts.logFile, "log-file", false, "Also log to $XDG_STATE_HOME/pkg-update-checker/logs")

	rootCmd.AddCommand(newCompletionCmd(rootCmd))
	return rootCmd
}

func configureLogging(opts *options) error {
	log := logger.Default()
	log.SetLevel(logger.LevelInfo)
	log.SetVerbose(opts.verbose)
	log.SetQuiet(opts.quiet)
	if opts.noColor {
		output.NoColor()
	}
	if opts.logFile {
		if err := log.EnableFileLogging(); err != nil {
			return err
		}
	}
	if opts.journal && !log.EnableJournal() {
		log.Warn("systemd journal is not available, logging to stderr only")
	}
	return nil
}

// resolveConfig merges the config file (if any) with explicitly set flags.
// Flags win.
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := &config.Config{}
	if opts.configFile != "" {
		loaded, err := config.LoadFrom(opts.configFile)
		if err != nil {
			return nil, &usageError{err: err}
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("pkg") {
		cfg.Package = opts.pkg
	}
	if flags.Changed("jail") {
		cfg.Jail = opts.jail
	}
	if flags.Changed("po-token") {
		cfg.Pushover.Token = opts.token
	}
	if flags.Changed("po-user") {
		cfg.Pushover.User = opts.user
	}
	if flags.Changed("po-lock-dir") {
		cfg.LockDir = opts.lockDir
	}
	return cfg, nil
}

func runCheck(cmd *cobra.Command, opts *options, checkerOpts []checker.Option) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	c, err := checker.New(cfg, checkerOpts...)
	if err != nil {
		return err
	}

	report, err := c.Run(cmd.Context())
	if report != nil {
		printReport(report, err)
	}
	return err
}

// printReport writes the human status lines for one run
func printReport(r *checker.Report, runErr error) {
	pkg := output.FormatPackage(r.Jail, r.Package)

	if r.Result.HasUpdate {
		output.PrintInfo("a new version of %s was found: %s", pkg, r.Result.Version)
	} else {
		output.Plain("no updates available for %s\n", pkg)
	}

	switch r.Outcome {
	case gate.OutcomeMarkerRemoved:
		output.PrintSuccess("notification suppression lockfile removed")
	case gate.OutcomeNotified:
		output.Plain("sending a pushover notification... ")
		output.Println(output.Success, "success")
		if runErr == nil {
			output.PrintSuccess("notification suppression lockfile created")
		}
	case gate.OutcomeSendFailed:
		output.Plain("sending a pushover notification... ")
		output.Println(output.Error, "failure")
	case gate.OutcomeSuppressed:
		output.PrintWarning("lockfile found -- suppressing pushover notification")
	}

	logger.Debug("%s %s (lockfile %s)", output.FormatStatus(r.Outcome.String()), pkg, r.MarkerPath)
}
