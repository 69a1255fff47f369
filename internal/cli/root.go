// Package cli implements the fakedata command line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-arrower/fakedata/alog"
	"github.com/go-arrower/fakedata/cmd"
	"github.com/go-arrower/fakedata/provider"
	"github.com/go-arrower/fakedata/storage"
)

type Option func(*options)

type options struct {
	now       func() time.Time
	s3Options []storage.S3Option
	envFiles  []string
}

// WithClock sets the clock used for the generated output file name.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithS3Options passes opts to the S3 storage, e.g. a mock client.
func WithS3Options(opts ...storage.S3Option) Option {
	return func(o *options) {
		o.s3Options = append(o.s3Options, opts...)
	}
}

// WithEnvFiles sets the .env files loaded before the configuration is read.
// The default is .env in the working directory.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.envFiles = paths
	}
}

func newRootCmd(o *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "fakedata",
		Short: "Gerador de massa de dados fake para QA.",
		Long: `Gera uma tabela de dados fictícios, mas realistas, a partir de uma lista de campos
e grava o resultado em CSV, JSON ou YAML.

Sem sub-comando, fakedata executa "generate".`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE:                  runGenerate(o),
	}

	root.PersistentFlags().String("config", "", "Arquivo de configuração YAML")
	root.PersistentFlags().BoolP("verbose", "v", false, "Mostra logs de debug no stderr")
	addGenerateFlags(root.Flags())

	return root
}

// NewFakedataCLI initialises the complete fakedata cli with its commands and returns the root command.
func NewFakedataCLI(opts ...Option) *cobra.Command {
	o := &options{
		now:      time.Now,
		envFiles: []string{".env"},
	}
	for _, opt := range opts {
		opt(o)
	}

	root := newRootCmd(o)
	root.AddCommand(newGenerateCmd(o))
	root.AddCommand(newFieldsCmd(o))
	root.AddCommand(cmd.Version("fakedata"))

	return root
}

// Execute runs the fakedata cli and exits with 1 on any error.
func Execute() {
	if err := NewFakedataCLI().Execute(); err != nil {
		PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

// PrintError writes a user facing message for err to w.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "Erro: %v\n", err)

	if errors.Is(err, provider.ErrMissingDependency) {
		fmt.Fprintf(w, "Locales suportados: %s\n", supportedLocales())
	}
}

func supportedLocales() string {
	locales := make([]string, 0, len(provider.Locales()))
	for _, l := range provider.Locales() {
		locales = append(locales, string(l))
	}

	return strings.Join(locales, ", ")
}

// newLogger logs to stderr: warnings only, or everything if verbose.
func newLogger(cmd *cobra.Command, verbose bool) alog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = alog.LevelDebug
	}

	return alog.NewDevelopment(cmd.ErrOrStderr(), level)
}
