/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

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
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/compflow/flow"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "compflow",
	Short: "Compressible flow relations for a calorically perfect gas",
	Long: `
Computes isentropic, normal shock, oblique shock, Fanno and Rayleigh flow states from any one
known quantity, inverting the relations numerically where needed.

compflow isentropic --known A/A* --value 1.5 --branch supersonic
compflow oblique-shock --m1 2.5 --known theta_deg --value 10 --branch weak
compflow serve --listen :8080`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.compflow.yaml)")
	pf.Float64P("gamma", "g", flow.DefaultGamma, "ratio of specific heats")
	pf.Float64("tolerance", 0, "relative tolerance of the numerical inversion, 0 for the default")
	pf.Int("maxIterations", 0, "iteration budget of the numerical inversion, 0 for the default")
	pf.StringP("output", "o", "text", "output format: text, json or yaml")
	pf.String("logLevel", "info", "log level for the server: debug, info, warn or error")
	for _, key := range []string{"gamma", "tolerance", "maxIterations", "output", "logLevel"} {
		_ = viper.BindPFlag(key, pf.Lookup(key))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".compflow" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".compflow")
	}

	viper.SetEnvPrefix("COMPFLOW")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func newDispatcher() *flow.Dispatcher {
	return flow.NewDispatcher(viper.GetFloat64("tolerance"), viper.GetInt("maxIterations"))
}
