// Command embedder embeds build-time selected files into a go package.
//
// It is meant to be invoked by "go generate" from within the package directory:
//
//	//go:generate go run github.com/maja42/packer/cmd/embedder
//
// The manifest (embed.yaml) lists the payloads of the package and the environment variables holding their source paths.
// The command fails if a payload cannot be resolved, which aborts the build.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maja42/packer/embedding"
)

// envManifest overrides the default manifest path.
const envManifest = "PACKER_MANIFEST"

type CommandLine struct {
	Manifest string
	Dir      string
	Check    bool
	LogLevel string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "embedder: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cmdLine CommandLine

	manifest := os.Getenv(envManifest)
	manifestFromEnv := manifest != ""
	if !manifestFromEnv {
		manifest = embedding.DefaultManifest
	}

	cmd := &cobra.Command{
		Use:   "embedder",
		Short: "Embed build-time selected files into a go package",
		Long: "Embed build-time selected files into a go package.\n\n" +
			"For every payload listed in the manifest, the file referenced by the payload's environment variable\n" +
			"is copied into the package directory and an accessor returning a copy of its content is generated.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmdLine.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer logger.Sync()

			if cmdLine.Dir == "" && manifestFromEnv && !cmd.Flags().Changed("manifest") {
				// every go:generate invocation sees the same environment, output goes to the invoking package
				cmdLine.Dir = "."
			}
			return run(cmdLine, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cmdLine.Manifest, "manifest", "m", manifest, "Path to the YAML manifest listing the payloads (env: "+envManifest+")")
	flags.StringVarP(&cmdLine.Dir, "dir", "d", "", "Package directory receiving the payloads (default: directory of the manifest, or the working directory if the manifest is taken from "+envManifest+")")
	flags.BoolVar(&cmdLine.Check, "check", false, "Only verify that the package is up to date, without modifying it")
	flags.StringVar(&cmdLine.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	return cmd
}

func run(cmdLine CommandLine, logger *zap.Logger) error {
	m, err := embedding.LoadManifest(cmdLine.Manifest)
	if err != nil {
		return err
	}

	dir := cmdLine.Dir
	if dir == "" {
		dir = filepath.Dir(cmdLine.Manifest)
	}

	log := logger.With(zap.String("package", m.Package), zap.String("dir", dir))
	progress := log.Sugar().Infof

	if cmdLine.Check {
		if err := embedding.Check(dir, m, os.LookupEnv, progress); err != nil {
			log.Error("Package is out of date", zap.Error(err))
			return err
		}
		log.Info("Package is up to date", zap.Int("payloads", len(m.Payloads)))
		return nil
	}

	if err := embedding.Embed(dir, m, os.LookupEnv, progress); err != nil {
		log.Error("Embedding failed", zap.Error(err))
		return err
	}
	log.Info("Embedded payloads", zap.Int("payloads", len(m.Payloads)))
	return nil
}
