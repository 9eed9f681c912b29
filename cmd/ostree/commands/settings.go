package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix for ostree settings.
const envPrefix = "OSTREE"

// ErrInvalidSettings is returned for settings out of their valid range.
var ErrInvalidSettings = errors.New("invalid settings")

// BenchSettings are the parameters of a benchmark run.
type BenchSettings struct {
	Keys    int   `mapstructure:"keys"`
	Range   int   `mapstructure:"range"`
	Deletes int   `mapstructure:"deletes"`
	Seed    int64 `mapstructure:"seed"`
	Check   bool  `mapstructure:"check"`
}

// Validate checks the settings for consistency.
func (s BenchSettings) Validate() error {
	if s.Keys < 0 {
		return fmt.Errorf("%w: negative key count %d", ErrInvalidSettings, s.Keys)
	}
	if s.Range <= 0 {
		return fmt.Errorf("%w: key range must be positive, is %d", ErrInvalidSettings, s.Range)
	}
	if s.Deletes < 0 || s.Deletes > s.Keys {
		return fmt.Errorf("%w: cannot delete %d of %d keys", ErrInvalidSettings, s.Deletes, s.Keys)
	}
	return nil
}

// DumpSettings are the options of the dump command.
type DumpSettings struct {
	Delete []string `mapstructure:"delete"`
	Dot    bool     `mapstructure:"dot"`
	Sizes  bool     `mapstructure:"sizes"`
}

// loadSettings merges the flags of cmd with OSTREE_* environment variables
// into out. Flags set on the command line take precedence.
func loadSettings(cmd *cobra.Command, out any) error {
	viperCfg := viper.New()

	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viperCfg.AutomaticEnv()

	bindErr := viperCfg.BindPFlags(cmd.Flags())
	if bindErr != nil {
		return fmt.Errorf("bind flags: %w", bindErr)
	}

	unmarshalErr := viperCfg.Unmarshal(out)
	if unmarshalErr != nil {
		return fmt.Errorf("unmarshal settings: %w", unmarshalErr)
	}

	return nil
}
