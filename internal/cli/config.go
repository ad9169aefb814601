package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"go.dw1.io/compacthash/internal/convert"
)

const envPrefix = "COMPACTHASH"

// setAllConfig binds flags, the environment and an optional TOML config file
// into v. Flags win over environment variables (COMPACTHASH_ plus the
// upper-cased flag name with dashes replaced by underscores), which win over
// the config file. Config keys must name a flag of some command.
func setAllConfig(v *viper.Viper, cmd *cobra.Command) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	c := v.GetString("config")
	if c == "" {
		return nil
	}

	v.SetConfigFile(c)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading configuration file '%s': %v", c, err)
	}

	validKeys := make(map[string]bool)
	collectFlagNames(cmd.Root(), validKeys)
	for _, key := range v.AllKeys() {
		if !validKeys[key] {
			return fmt.Errorf("invalid option in configuration file: %v", key)
		}
	}

	return nil
}

func collectFlagNames(cmd *cobra.Command, names map[string]bool) {
	visit := func(f *pflag.Flag) { names[f.Name] = true }
	cmd.PersistentFlags().VisitAll(visit)
	cmd.LocalFlags().VisitAll(visit)
	for _, sub := range cmd.Commands() {
		collectFlagNames(sub, names)
	}
}

func (c *command) seed() (uint64, error) {
	seed, err := convert.Uint64(c.v.Get("seed"))
	if err != nil {
		return 0, fmt.Errorf("%w: seed: %v", ErrUsage, err)
	}

	return seed, nil
}

func (c *command) positiveInt(key string) (int, error) {
	n, err := convert.Int(c.v.Get(key))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrUsage, key, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %s must be at least 1, got %d", ErrUsage, key, n)
	}

	return n, nil
}
