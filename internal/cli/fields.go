package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/go-arrower/fakedata/internal/application"
)

func newFieldsCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Lista os campos disponíveis para o locale",
		Long: `Lista os campos conhecidos com a capacidade do provider que os gera.
Campos sem capacidade ficam vazios na saída. Qualquer capacidade do provider
também pode ser usada diretamente como nome de campo.`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := loadConfig(cmd, o, "locale", "verbose")
			if err != nil {
				return err
			}

			app := application.NewDatasetApplication(newLogger(cmd, conf.Verbose), nil, o.now)

			res, err := app.ListFields.H(cmd.Context(), application.ListFieldsQuery{Locale: conf.Locale})
			if err != nil {
				return err //nolint:wrapcheck // the use case error is shown to the user as is
			}

			header := color.New(color.Bold).SprintFunc()
			missing := color.New(color.FgYellow).SprintFunc()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0) //nolint:mnd // padding
			fmt.Fprintf(w, "%s\t%s\n", header("CAMPO"), header("CAPACIDADE"))

			for _, f := range res.Fields {
				capability := f.Capability
				if capability == "" {
					capability = missing("-")
				}

				fmt.Fprintf(w, "%s\t%s\n", f.Name, capability)
			}

			if err = w.Flush(); err != nil {
				return fmt.Errorf("could not write fields: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\n%s %s\n", header("Capacidades ("+string(res.Locale)+"):"), strings.Join(res.Capabilities, ", "))

			return nil
		},
	}

	cmd.Flags().String("locale", "pt_BR", "Locale dos dados: pt_BR ou en_US (pt e en sem região também)")

	return cmd
}
