package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/linml/pkg/errors"
	"github.com/YuminosukeSato/linml/pkg/log"
)

const logLevelEnv = "LINML_LOG_LEVEL"

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "linml",
		Short:         "Train linear models on CSV data",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := logLevel
			if !cmd.Flags().Changed("log-level") {
				if env := os.Getenv(logLevelEnv); env != "" {
					level = env
				}
			}
			if err := log.SetupLoggerTo(cmd.ErrOrStderr(), level); err != nil {
				return err
			}
			installWarnings(cmd.ErrOrStderr())
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error); defaults to $"+logLevelEnv)

	cmd.AddCommand(newFitCmd(), newVersionCmd())
	return cmd
}

// installWarnings routes library warnings to a zerolog console writer.
func installWarnings(w io.Writer) {
	_, noColor := os.LookupEnv("NO_COLOR")
	zl := zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: time.TimeOnly,
	}).With().Timestamp().Logger()

	errors.SetZerologWarnFunc(func(warning error) {
		ev := zl.Warn()
		var m zerolog.LogObjectMarshaler
		if errors.As(warning, &m) {
			ev = ev.EmbedObject(m)
		}
		ev.Msg(warning.Error())
	})
}
