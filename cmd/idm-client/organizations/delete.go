package organizations

import (
	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/api"
	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/client/idm"
	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/flags"
)

func NewDeleteCommand(config *idm.IDMConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an organization",
		Long:  "Delete a single organization by id.",
		Run: func(cmd *cobra.Command, args []string) {
			runDelete(config, cmd)
		},
	}

	cmd.Flags().String(FlagID, "", "Organization id")

	return cmd
}

func runDelete(config *idm.IDMConfig, cmd *cobra.Command) {
	id := flags.MustGetDefinedString(FlagID, cmd.Flags())

	manager := buildManager(config, cmd)
	if err := manager.Delete(cmd.Context(), api.OrganizationParams{ID: id}); err != nil {
		glog.Fatalf("Unable to delete organization: %s", err.Error())
	}
	glog.Infof("Organization %s deleted", id)
}
