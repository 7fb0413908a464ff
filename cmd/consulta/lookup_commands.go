package main

import (
	"strings"

	"github.com/spf13/cobra"

	"consulta/internal/identifier"
)

// typeCommands maps each subcommand to its identifier type. The placa alias
// matches the Brazilian name for license plates.
var typeCommands = []struct {
	use   string
	short string
	typ   identifier.Type
}{
	{"cnpj <número>", "Resolve a company registration number", identifier.TypeCNPJ},
	{"cpf <número>", "Validate an individual tax ID", identifier.TypeCPF},
	{"cep <número>", "Resolve a postal code", identifier.TypeCEP},
	{"phone <número>", "Identify a telephone number", identifier.TypePhone},
	{"email <endereço>", "Probe an email address", identifier.TypeEmail},
	{"domain <domínio>", "Resolve a domain's DNS records", identifier.TypeDomain},
	{"placa <placa>", "Identify a license plate", identifier.TypePlate},
}

func newLookupCommands(ctx *commandContext) []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(typeCommands))
	for _, tc := range typeCommands {
		cmds = append(cmds, &cobra.Command{
			Use:   tc.use,
			Short: tc.short,
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := ctx.ensureService()
				if err != nil {
					return err
				}
				rec, err := svc.Resolve(cmd.Context(), tc.typ, strings.Join(args, " "))
				if err != nil {
					return err
				}
				return printJSON(cmd, rec)
			},
		})
	}
	return cmds
}

func newAutoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "auto <consulta>",
		Short: "Detect the identifier type and resolve it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuto(ctx, cmd, args)
		},
	}
}

func runAuto(ctx *commandContext, cmd *cobra.Command, args []string) error {
	svc, err := ctx.ensureService()
	if err != nil {
		return err
	}
	out := svc.AutoDetect(cmd.Context(), strings.Join(args, " "))
	return printJSON(cmd, out)
}
