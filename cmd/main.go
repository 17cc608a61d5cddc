package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "certd",
	Short: "Looks certificates up by admit number in Google Sheets.",
}

func init() {
	cobra.OnInitialize(initConfig)
	flags := rootCmd.PersistentFlags()
	var verbose bool
	flags.StringVar(&configFile, "config", "", "The config file to use, default is $HOME/.certd/certd.yaml")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Show debug logging")
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	viper.SetEnvPrefix("CERTD")
	_ = viper.BindEnv("api_key")
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
