package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/sp0x/certd/config"
	"github.com/sp0x/certd/verifier"
)

var appConfig config.ViperConfig

func initConfig() {
	config.SetDefaults(&appConfig)
	// We load the default config file
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(config.GetConfigDir())
		viper.SetConfigType("yaml")
		viper.SetConfigName("certd")
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			err = viper.SafeWriteConfig()
			if err != nil {
				log.Warningf("error while writing default config file: %v\n", err)
			}
		} else {
			log.Warningf("error while reading config file: %v\n", err)
			os.Exit(1)
		}
	}
	log.SetLevel(config.GetMinLogLevel(&appConfig))
}

// newVerifier builds the verifier from the loaded configuration, exiting on invalid options.
func newVerifier(ctx context.Context) *verifier.Verifier {
	opts, err := config.LoadOptions(&appConfig)
	if err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	v, err := verifier.New(ctx, opts)
	if err != nil {
		fmt.Printf("Couldn't initialize: %v\n", err)
		os.Exit(1)
	}
	return v
}
