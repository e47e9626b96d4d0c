package organizations

import (
	"encoding/json"
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/auth"
	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/client/idm"
	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/flags"
)

// NewOrganizationsCommand creates the `organizations` command group with its
// CRUD subcommands.
func NewOrganizationsCommand() *cobra.Command {
	config := idm.NewIDMConfig()

	cmd := &cobra.Command{
		Use:   "organizations",
		Short: "Perform organization CRUD actions against the identity-management API",
		Long:  "Perform organization CRUD actions against the identity-management API.",
	}
	config.AddFlags(cmd.PersistentFlags())
	cmd.PersistentFlags().String(FlagAccessToken, "", "Pre-obtained access token, skips the client_credentials grant")

	cmd.AddCommand(
		NewCreateCommand(config),
		NewListCommand(config),
		NewGetCommand(config),
		NewUpdateCommand(config),
		NewDeleteCommand(config),
	)

	return cmd
}

func buildManager(config *idm.IDMConfig, cmd *cobra.Command) idm.OrganizationManager {
	var provider auth.TokenProvider
	if token := flags.MustGetString(FlagAccessToken, cmd.Flags()); token != "" {
		provider = auth.NewStaticTokenProvider(token)
	} else if err := config.ReadFiles(); err != nil {
		glog.V(10).Infof("Unable to read client credential files: %s", err.Error())
	}

	manager, err := idm.NewOrganizationManager(config, provider)
	if err != nil {
		glog.Fatalf("Unable to create organization manager: %s", err.Error())
	}
	return manager
}

func printJSON(payload interface{}) {
	output, marshalErr := json.MarshalIndent(payload, "", "    ")
	if marshalErr != nil {
		glog.Fatalf("Failed to format output: %s", marshalErr.Error())
	}
	fmt.Println(string(output))
}
