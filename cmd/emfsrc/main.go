package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/provide-io/emfsrc/pkg/logging"
)

const version = "0.4.0"

// cli holds the flag values of one command tree.
type cli struct {
	logLevel    string
	versionFlag bool

	outputPath   string
	outputMode   string
	bitmapDir    string
	codecChain   string
	handleArray  string
	deviceCtx    string
	strict       bool
	recordsLimit int

	logger   hclog.Logger
	closeLog func() error
}

func getBuildTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "emfsrc %s\n", version)
	fmt.Fprintf(w, "Built: %s\n", getBuildTimestamp())
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "emfsrc",
		Short: "Decompile EMF metafiles into GDI calls",
		Long: `emfsrc reads an Enhanced Metafile (optionally gzip or bzip2 compressed)
and writes the C statements against an HDC that replay its records.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setupLogger()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.closeLog != nil {
				return c.closeLog()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.versionFlag {
				printVersion(cmd.OutOrStdout())
				return nil
			}
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error; json:<level> for JSON)")
	rootCmd.Flags().BoolVarP(&c.versionFlag, "version", "V", false, "Show version information")
	rootCmd.PersistentFlags().StringVar(&c.codecChain, "codec", "", "Compression chain of the input (raw, gzip, bzip2, gzip|bzip2); detected when empty")

	rootCmd.AddCommand(
		newDecodeCmd(c),
		newRecordsCmd(c),
		newVerifyCmd(c),
		newConstantCmd(c),
	)
	return rootCmd
}

func (c *cli) setupLogger() error {
	level := c.logLevel
	if level == "" {
		level = logging.GetLogLevel()
	}
	output, closeLog, err := logging.OpenOutput()
	if err != nil {
		return err
	}
	c.closeLog = closeLog
	c.logger = logging.NewLogger("emfsrc", level, output)
	return nil
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		printVersion(os.Stdout)
		os.Exit(0)
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
