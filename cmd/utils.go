package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var replacer = strings.NewReplacer(".", "_", "-", "_")

type argType interface {
	string | bool | int | time.Duration
}

func (b boundEnvVar[T]) envName() string {
	if b.Env != nil {
		return *b.Env
	}
	return strings.ToUpper(replacer.Replace(b.Name))
}

func (b boundEnvVar[T]) shorthand() string {
	if b.Short == nil {
		return ""
	}
	return *b.Short
}

// bindEnvMap registers a persistent flag for every entry of m. The current value of the bound variable
// is the flag default, unless the entry's environment variable is set.
func bindEnvMap[T argType](cmd *cobra.Command, m map[*T]boundEnvVar[T]) {
	flags := cmd.PersistentFlags()
	for v, cfg := range m {
		env := cfg.envName()
		_, fromEnv := os.LookupEnv(env)
		desc := fmt.Sprintf("[%s] %s", env, cfg.Description)

		switch vt := any(v).(type) {
		case *string:
			def := *vt
			if fromEnv {
				def = viper.GetString(env)
			}
			flags.StringVarP(vt, cfg.Name, cfg.shorthand(), def, desc)
		case *bool:
			def := *vt
			if fromEnv {
				def = viper.GetBool(env)
			}
			flags.BoolVarP(vt, cfg.Name, cfg.shorthand(), def, desc)
		case *int:
			def := *vt
			if fromEnv {
				def = viper.GetInt(env)
			}
			flags.CountVarP(vt, cfg.Name, cfg.shorthand(), desc)
			_ = flags.Lookup(cfg.Name).Value.Set(strconv.Itoa(def))
		case *time.Duration:
			def := *vt
			if fromEnv {
				def = viper.GetDuration(env)
			}
			flags.DurationVarP(vt, cfg.Name, cfg.shorthand(), def, desc)
		default:
			log.Panicf("command-args parsing error: unhandled default case for type %T", vt)
		}

		_ = viper.BindPFlag(cfg.Name, flags.Lookup(cfg.Name))
		_ = viper.BindEnv(cfg.Name, env)

		if cfg.Hidden {
			_ = flags.MarkHidden(cfg.Name)
		}
	}
}
