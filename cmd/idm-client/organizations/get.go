package organizations

import (
	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/api"
	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/client/idm"
	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/flags"
)

func NewGetCommand(config *idm.IDMConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get an organization",
		Long:  "Get a single organization by id.",
		Run: func(cmd *cobra.Command, args []string) {
			runGet(config, cmd)
		},
	}

	cmd.Flags().String(FlagID, "", "Organization id")

	return cmd
}

func runGet(config *idm.IDMConfig, cmd *cobra.Command) {
	id := flags.MustGetDefinedString(FlagID, cmd.Flags())

	manager := buildManager(config, cmd)
	organization, err := manager.Get(cmd.Context(), api.OrganizationParams{ID: id})
	if err != nil {
		glog.Fatalf("Unable to get organization: %s", err.Error())
	}
	printJSON(organization)
}
