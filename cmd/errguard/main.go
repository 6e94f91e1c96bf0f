package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/shuldan/errorhandler/pkg/contracts"
	"github.com/shuldan/errorhandler/pkg/errors"
)

var (
	// Version is injected at build time.
	Version = "dev"
	// BuildDate is injected at build time.
	BuildDate = ""
)

const (
	appName  = "errguard"
	appShort = "errguard runs an HTTP service guarded by the process error handler"
	appLong  = `errguard wires the error handler into a small HTTP service.
	Runtime warnings, panics and errors escaping request handlers are
	logged through the configured logger and counted in Prometheus.`

	configFlagName    = "config"
	configShortFlag   = "c"
	logLevelFlagName  = "log-level"
	logLevelShortFlag = "v"

	versionCmdName = "version"
	versionShort   = "Display the errguard version"
)

var allLoggerLevels = []string{
	string(contracts.LevelDebug),
	string(contracts.LevelInfo),
	string(contracts.LevelNotice),
	string(contracts.LevelWarning),
	string(contracts.LevelError),
	string(contracts.LevelCritical),
	string(contracts.LevelAlert),
	string(contracts.LevelEmergency),
}

// rootFlags holds the persistent flags shared across the command tree.
type rootFlags struct {
	configPaths []string
	logLevel    string
}

func (f *rootFlags) addFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringSliceVarP(&f.configPaths, configFlagName, configShortFlag, []string{"config.yaml"},
		"configuration files, the first YAML and the first JSON file found are loaded")
	flags.StringVarP(&f.logLevel, logLevelFlagName, logLevelShortFlag, "",
		"override logger.level (possible values: "+strings.Join(allLoggerLevels, ", ")+")")
}

const (
	exitFailure     = 1
	exitConfigError = 2
)

// configErrorPrefixes are the error code prefixes of packages that fail
// on bad configuration.
var configErrorPrefixes = []string{"CONFIG", "LOGGER", "SEVERITY", "ERRHANDLER"}

func main() {
	os.Exit(exitCode(rootCmd().ExecuteContext(context.Background())))
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	code := string(errors.GetErrorCode(err))
	for _, prefix := range configErrorPrefixes {
		if strings.HasPrefix(code, prefix+"_") {
			return exitConfigError
		}
	}
	return exitFailure
}

func rootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: heredoc.Doc(appShort),
		Long:  heredoc.Doc(appLong),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln(err)
		_ = c.Usage()
		return err
	})

	flags.addFlags(cmd)
	cmd.AddCommand(
		serveCmd(flags),
		versionCmd(),
	)

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   versionCmdName,
		Short: heredoc.Doc(versionShort),

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), versionString(Version, BuildDate, runtime.Version()))
		},
	}
}

func versionString(version, buildDate, runtimeVersion string) string {
	out := version
	if buildDate != "" {
		out += " (" + buildDate + ")"
	}
	return out + ", Go Version: " + runtimeVersion
}
