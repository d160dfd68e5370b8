package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"domainmodel/internal/core"
	"domainmodel/internal/log"
)

func convertCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <amount> <from> <to>",
		Short: "Convert an integer amount between currencies",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[0])
			if err != nil {
				return wrap("convert", fmt.Errorf("invalid amount %q: %w", args[0], err))
			}
			from, err := core.ParseCurrency(args[1])
			if err != nil {
				return wrap("convert", err)
			}
			to, err := core.ParseCurrency(args[2])
			if err != nil {
				return wrap("convert", err)
			}

			in := core.NewMoney(amount, string(from))
			out := in.Convert(string(to))
			e.logger.DebugContext(cmd.Context(), "Converted",
				append([]any{log.FieldOperation, log.OpConvert}, log.NewFields().WithMoney(out).ToSlice()...)...)
			fmt.Fprintf(e.out, "%s = %s\n", in, out)
			return nil
		},
	}
}
