package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sp0x/certd/server"
)

func init() {
	cmdServe := &cobra.Command{
		Use:   "serve",
		Short: "Runs the lookup API server.",
		Run:   serve,
	}
	port := 5000
	warm := false
	cmdFlags := cmdServe.Flags()
	cmdFlags.IntVarP(&port, "port", "p", 5000, "The port to listen on.")
	cmdFlags.BoolVar(&warm, "warm", false, "Fetch every table before accepting requests.")
	_ = viper.BindEnv("port")
	_ = viper.BindPFlag("port", cmdFlags.Lookup("port"))
	_ = viper.BindPFlag("warm", cmdFlags.Lookup("warm"))
	rootCmd.AddCommand(cmdServe)
}

func serve(c *cobra.Command, _ []string) {
	ctx := context.Background()
	v := newVerifier(ctx)
	if viper.GetBool("warm") {
		set, err := v.Refresh(ctx)
		if err != nil {
			log.Warnf("Couldn't prefill the cache: %v", err)
		} else {
			log.WithField("records", set.Records()).Info("Cache prefilled")
		}
	}
	// Init the server
	rserver := server.NewServer(&appConfig, v)
	err := rserver.Listen()
	if err != nil {
		fmt.Print(err)
		os.Exit(1)
	}
}
