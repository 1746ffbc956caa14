// SPDX-License-Identifier: Unlicense OR MIT

// Command imui renders scripted sessions of the widget gallery to PNG
// images and inspects themes and fonts.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

// logger receives frame events and backend errors. It writes to stderr
// unless --log-file is set.
var logger = log.New(os.Stderr, "imui: ", log.LstdFlags)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "imui: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var logFile string
	var quiet bool
	root := &cobra.Command{
		Use:           "imui",
		Short:         "Render and inspect the immediate mode widget gallery",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(logFile, quiet)
		},
	}
	root.SetOut(stdout)
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "write the log to a rotated file instead of stderr")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "discard the log")
	root.AddCommand(newRenderCmd(), newThemeCmd(), newFontsCmd())
	return root
}

func setupLogger(path string, quiet bool) {
	switch {
	case quiet:
		logger.SetOutput(io.Discard)
	case path != "":
		logger.SetOutput(&lumberjack.Logger{
			Filename:   path,
			MaxSize:    15,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		})
		logger.SetPrefix("")
	default:
		logger.SetOutput(os.Stderr)
	}
}
