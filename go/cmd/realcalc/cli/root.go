/*
Copyright 2024 The Lazyreal Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package cli implements the realcalc command tree.
package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lazyreal/lazyreal/go/log"
)

var (
	maxPrecision int
	digits       int
	trace        bool
)

// Root builds the realcalc command tree. Flag defaults may be overridden by
// a realcalc.yaml config file or REALCALC_* environment variables.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "realcalc",
		Short: "realcalc evaluates expressions over exact real numbers.",
		Long: "`realcalc` evaluates arithmetic expressions over exact real numbers.\n\n" +
			"Numbers are refined lazily: the result of an evaluation is an interval\n" +
			"that provably encloses the true value, tightened one decimal digit at a\n" +
			"time until the requested number of digits is guaranteed.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
		Run: func(cmd *cobra.Command, _ []string) { _ = cmd.Help() },
	}

	pf := root.PersistentFlags()
	pf.IntVar(&maxPrecision, "max-precision", 50, "maximum number of refinement steps before divergent operations fail")
	pf.IntVar(&digits, "digits", 10, "number of fractional digits to guarantee in the result")
	pf.BoolVar(&trace, "trace", false, "print the interval at every refinement step")
	log.RegisterFlags(pf)

	root.AddCommand(Eval())
	return root
}

func initConfig(cmd *cobra.Command) error {
	viper.SetConfigName("realcalc")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/realcalc")
	viper.SetEnvPrefix("REALCALC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	} else {
		log.V(1).Infof("using config file %s", viper.ConfigFileUsed())
	}

	for _, key := range []string{"max-precision", "digits", "trace"} {
		f := cmd.Flags().Lookup(key)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return err
		}
		if !f.Changed && viper.IsSet(key) {
			if err := f.Value.Set(viper.GetString(key)); err != nil {
				return err
			}
		}
	}
	return nil
}
