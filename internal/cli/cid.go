package cli

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/spf13/cobra"

	"go.dw1.io/compacthash/multihash"
)

func newCIDCommand(c *command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cid [paths...]",
		Short: "Print a CIDv1 (raw codec, compacthash multihash) for each input.",
		RunE: func(_ *cobra.Command, args []string) error {
			length, err := c.positiveInt("length")
			if err != nil {
				return err
			}
			words, err := multihash.Words(length)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrUsage, err)
			}

			enc, err := multibase.EncoderByName(c.v.GetString("base"))
			if err != nil {
				return fmt.Errorf("%w: base: %v", ErrUsage, err)
			}

			return c.runDigest(args, words, func(in input) (record, error) {
				m, err := multihash.FromWords(in.words, length)
				if err != nil {
					return record{}, err
				}

				return record{CID: cid.NewCidV1(cid.Raw, m).Encode(enc)}, nil
			})
		},
	}
	flags := cmd.Flags()
	flags.Int("length", multihash.DefaultLength, "Digest length in bytes.")
	flags.String("base", "base32", "Multibase encoding of the CID string.")
	addInputFlags(flags)

	return cmd
}
