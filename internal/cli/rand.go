package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.dw1.io/compacthash/internal/convert"
	"go.dw1.io/compacthash/internal/jsonout"
	"go.dw1.io/compacthash/splitmix"
)

type randRecord struct {
	Seed   string   `json:"seed,omitempty"`
	Values []string `json:"values"`
}

func newRandCommand(c *command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rand",
		Short: "Print values from the SplitMix64 seed stream.",
		Long: `Print values from the SplitMix64 generator used to derive
extended-output seeds. With --random the generator is seeded from the
operating system's entropy source and the output is not reproducible.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			count, err := c.positiveInt("count")
			if err != nil {
				return err
			}
			discard, err := convert.Uint64(c.v.Get("discard"))
			if err != nil {
				return fmt.Errorf("%w: discard: %v", ErrUsage, err)
			}

			var (
				src *splitmix.Source
				rec randRecord
			)
			if c.v.GetBool("random") {
				if src, err = splitmix.NewNonDeterministic(); err != nil {
					return err
				}
			} else {
				seed, err := c.seed()
				if err != nil {
					return err
				}
				src = splitmix.New(seed)
				rec.Seed = hexSeed(seed)
			}

			src.Discard(discard)
			values := make([]uint64, count)
			for i := range values {
				values[i] = src.Uint64()
			}
			rec.Values = hexWords(values)

			if c.v.GetBool("json") {
				return jsonout.NewEncoder(c.stdout).Encode(rec)
			}
			for _, v := range rec.Values {
				if _, err := fmt.Fprintln(c.stdout, v); err != nil {
					return err
				}
			}

			return nil
		},
	}
	flags := cmd.Flags()
	flags.Int("count", 4, "Number of values to print.")
	flags.Uint64("discard", 0, "Skip this many values first.")
	flags.Bool("random", false, "Seed from the OS entropy source instead of --seed.")

	return cmd
}
