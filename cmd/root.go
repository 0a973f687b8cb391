package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "meishiki",
	Short: "Four Pillars destiny chart engine",
	Long: `Meishiki computes Four Pillars (BaZi) destiny charts extended with the
sanmeigaku star system: hidden stems, ten stars, twelve stages, void periods,
major and annual cycles, element balance, energy scores and compatibility.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default .meishiki.yaml)")
	pf.BoolP("verbose", "v", false, "verbose output")
	pf.Float64("longitude", 135, "birth longitude in degrees east")
	pf.String("gender", "male", "gender: male or female")
	pf.Bool("true-solar-time", false, "correct the birth hour to apparent solar time")
	pf.Int("cycles", 10, "number of major cycles")
	pf.StringP("format", "o", "json", "output format: json or text")
	pf.String("telemetry", "", "append JSONL telemetry events to this file")

	_ = viper.BindPFlag("verbose", pf.Lookup("verbose"))
	_ = viper.BindPFlag("longitude", pf.Lookup("longitude"))
	_ = viper.BindPFlag("gender", pf.Lookup("gender"))
	_ = viper.BindPFlag("true_solar_time", pf.Lookup("true-solar-time"))
	_ = viper.BindPFlag("cycle_count", pf.Lookup("cycles"))
	_ = viper.BindPFlag("output", pf.Lookup("format"))
	_ = viper.BindPFlag("telemetry.path", pf.Lookup("telemetry"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".meishiki")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("MEISHIKI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
