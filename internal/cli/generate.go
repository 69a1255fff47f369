package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/go-arrower/fakedata"
	"github.com/go-arrower/fakedata/dataset"
	"github.com/go-arrower/fakedata/internal/application"
	"github.com/go-arrower/fakedata/output"
	"github.com/go-arrower/fakedata/storage"
)

func newGenerateCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Gera o arquivo de dados",
		Example: `  fakedata generate --rows 100 --locale pt_BR --format csv --schema nome,email,cpf,telefone,empresa --output dados.csv
  fakedata generate --format json --seed 42 --output s3://qa-data/fake/dados.json`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE:                  runGenerate(o),
	}

	addGenerateFlags(cmd.Flags())

	return cmd
}

func addGenerateFlags(flags *pflag.FlagSet) {
	flags.Int("rows", 100, "Quantidade de linhas") //nolint:mnd // default number of rows
	flags.String("locale", "pt_BR", "Locale dos dados: pt_BR ou en_US (pt e en sem região também)")
	flags.String("format", "csv", "Formato de saída ("+formatNames()+")")
	flags.String("schema", dataset.DefaultSchema().String(), "Lista de campos separados por vírgula")
	flags.String("output", "", "Caminho do arquivo de saída ou s3://bucket/key (default: auto)")
	flags.Int64("seed", 0, "Semente para dados reprodutíveis")
}

// generateKeys are the flags bound to the configuration.
//
//nolint:gochecknoglobals // static list
var generateKeys = []string{"rows", "locale", "format", "schema", "output", "seed", "verbose"}

func runGenerate(o *options) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		conf, err := loadConfig(cmd, o, generateKeys...)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		logger := newLogger(cmd, conf.Verbose)

		store, err := newStorage(cmd, o, conf)
		if err != nil {
			return err
		}

		app := application.NewDatasetApplication(logger, store, o.now)

		res, err := app.GenerateDataset.H(ctx, application.GenerateDatasetRequest{
			Rows:   conf.Rows,
			Locale: conf.Locale,
			Format: conf.Format,
			Schema: conf.Schema,
			Output: conf.Output,
			Seed:   conf.Seed,
		})
		if err != nil {
			return err //nolint:wrapcheck // the use case error is shown to the user as is
		}

		printSummary(cmd.OutOrStdout(), res)

		if conf.Verbose && len(res.Unresolved) > 0 {
			warn := color.New(color.FgYellow).FprintfFunc()
			warn(cmd.ErrOrStderr(), "Campos sem gerador (vazios): %s\n", strings.Join(res.Unresolved, ", "))
		}

		return nil
	}
}

// loadConfig reads the configuration: flags > environment > config file > defaults.
func loadConfig(cmd *cobra.Command, o *options, keys ...string) (fakedata.Config, error) {
	if err := fakedata.LoadEnvFiles(o.envFiles...); err != nil {
		return fakedata.Config{}, err //nolint:wrapcheck // already wrapped
	}

	vip := fakedata.DefaultViper()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		if err := vip.ReadConfigFile(path); err != nil {
			return fakedata.Config{}, err //nolint:wrapcheck // already wrapped
		}
	}

	for _, key := range keys {
		if flag := cmd.Flags().Lookup(key); flag != nil {
			if err := vip.BindPFlag(key, flag); err != nil {
				return fakedata.Config{}, fmt.Errorf("%w: %w", fakedata.ErrConfigLoadFailed, err)
			}
		}
	}

	return vip.Load() //nolint:wrapcheck // already wrapped
}

// newStorage connects to S3 only, if the output is an S3 object.
func newStorage(cmd *cobra.Command, o *options, conf fakedata.Config) (storage.Storage, error) { //nolint:ireturn,lll // the Mux hides which storage is used
	var remote storage.Storage

	if conf.Output != "" {
		dst, err := storage.ParseDestination(conf.Output)
		if err != nil {
			return nil, err //nolint:wrapcheck // already wrapped
		}

		if dst.IsS3() {
			s3, err := storage.NewS3(cmd.Context(), conf.S3, o.s3Options...)
			if err != nil {
				return nil, err //nolint:wrapcheck // already wrapped
			}

			remote = s3
		}
	}

	return storage.NewMux(storage.NewLocal(), remote), nil
}

func printSummary(w io.Writer, res application.GenerateDatasetResponse) {
	label := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Fprintf(w, "%s %s\n", label("Arquivo gerado:"), res.Output)
	fmt.Fprintf(w, "%s %s\n", label("Campos:"), strings.Join(res.Fields, ", "))
	fmt.Fprintf(w, "%s %d\n", label("Linhas:"), res.Rows)
}

func formatNames() string {
	names := make([]string, 0, len(output.Formats()))
	for _, f := range output.Formats() {
		names = append(names, f.String())
	}

	return strings.Join(names, "/")
}
