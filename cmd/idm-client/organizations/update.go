package organizations

import (
	"encoding/json"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/api"
	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/client/idm"
	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/flags"
)

func NewUpdateCommand(config *idm.IDMConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update an organization",
		Long:  "Update an organization with a partial JSON payload.",
		Run: func(cmd *cobra.Command, args []string) {
			runUpdate(config, cmd)
		},
	}

	cmd.Flags().String(FlagID, "", "Organization id")
	cmd.Flags().String(FlagBody, "", "Partial organization JSON payload")

	return cmd
}

func runUpdate(config *idm.IDMConfig, cmd *cobra.Command) {
	id := flags.MustGetDefinedString(FlagID, cmd.Flags())
	body := flags.MustGetDefinedString(FlagBody, cmd.Flags())

	var patch api.Organization
	if err := json.Unmarshal([]byte(body), &patch); err != nil {
		glog.Fatalf("Invalid organization payload: %s", err.Error())
	}

	manager := buildManager(config, cmd)
	updated, err := manager.Update(cmd.Context(), api.OrganizationParams{ID: id}, patch)
	if err != nil {
		glog.Fatalf("Unable to update organization: %s", err.Error())
	}
	printJSON(updated)
}
