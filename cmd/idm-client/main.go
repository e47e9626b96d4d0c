package main

import (
	"flag"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/cmd/idm-client/organizations"
)

func main() {
	// This is needed to make `glog` believe that the flags have already been parsed, otherwise
	// every log message is prefixed by an error message stating that the flags haven't been
	// parsed.
	_ = flag.CommandLine.Parse([]string{})

	// Always log to stderr by default
	if err := flag.Set("logtostderr", "true"); err != nil {
		glog.Infof("Unable to set logtostderr to true")
	}

	rootCmd := &cobra.Command{
		Use:  "idm-client",
		Long: "idm-client is a command line client for the organizations resource of the identity-management API",
	}

	rootCmd.AddCommand(organizations.NewOrganizationsCommand())

	if err := rootCmd.Execute(); err != nil {
		glog.Fatalf("error running command: %v", err)
	}
}
