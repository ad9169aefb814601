// Package cli implements the compacthash command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.dw1.io/compacthash/internal/logging"
)

// command carries the I/O streams and resolved configuration shared by all
// subcommands.
type command struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	v   *viper.Viper
	log *slog.Logger
}

// NewRootCommand returns the compacthash root command.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	c := &command{stdin: stdin, stdout: stdout, stderr: stderr}

	rc := &cobra.Command{
		Use:   "compacthash",
		Short: "Fingerprint data with the compacthash 64-bit hash.",
		Long: `Fingerprint data with the compacthash 64-bit hash.

compacthash is a fast non-cryptographic hash for content addressing,
deduplication and checksums. Do not use it where an adversary controls
the input.

Every flag can also be set through a COMPACTHASH_<FLAG> environment
variable or a TOML file passed with --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if err := setAllConfig(v, cmd); err != nil {
				return fmt.Errorf("%w: %v", ErrUsage, err)
			}

			level, err := logging.ParseLevel(v.GetString("log-level"))
			if err != nil {
				return fmt.Errorf("%w: log-level: %v", ErrUsage, err)
			}

			c.v = v
			c.log = logging.New(c.stderr, level)

			return nil
		},
	}

	flags := rc.PersistentFlags()
	flags.StringP("config", "c", "", "TOML configuration file to read from.")
	flags.String("seed", "0", "Hash seed, decimal or 0x-prefixed hex.")
	flags.String("log-level", "warn", "Log level: debug, info, warn or error.")
	flags.Bool("json", false, "Write one JSON object per result.")

	rc.AddCommand(newSumCommand(c))
	rc.AddCommand(newManyCommand(c))
	rc.AddCommand(newCIDCommand(c))
	rc.AddCommand(newRandCommand(c))

	rc.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})
	rc.SetIn(stdin)
	rc.SetOut(stdout)
	rc.SetErr(stderr)

	return rc
}
