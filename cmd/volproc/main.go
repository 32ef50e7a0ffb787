// Command volproc applies a volumetric processor to a volume and reports
// sample statistics before and after.
//
// Usage:
//
//	volproc list
//	volproc apply [flags]
//
// The input is either a headerless little-endian float32 file (--in with
// --shape) or a synthetic phantom (--phantom with --shape). The processor
// comes from a YAML file (--config) or from --kind plus --set key=value
// pairs.
//
// Examples:
//
//	volproc list
//	volproc apply --kind blur --set sigma=2 --phantom sphere --shape 32,32,32
//	volproc apply --kind fft --set log=true --in scan.raw --shape 64,128,128 --out spectrum.raw
//	volproc apply --config deconv.yaml --in scan.raw --shape 64,128,128 --debug
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	debug  bool
	logger *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logrus.New()}

	root := &cobra.Command{
		Use:           "volproc",
		Short:         "Apply volumetric processors to 3-D volumes",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogger(a.logger, a.debug)
			a.logger.SetOutput(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	root.AddCommand(newListCmd())
	root.AddCommand(newApplyCmd(a))
	return root
}

func configureLogger(logger *logrus.Logger, debug bool) {
	if debug {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
		return
	}
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})
}
