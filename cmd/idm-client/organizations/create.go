package organizations

import (
	"encoding/json"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/api"
	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/client/idm"
	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/flags"
)

func NewCreateCommand(config *idm.IDMConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an organization",
		Long:  "Create an organization.",
		Run: func(cmd *cobra.Command, args []string) {
			runCreate(config, cmd)
		},
	}

	cmd.Flags().String(FlagBody, "", "Organization JSON payload")

	return cmd
}

func runCreate(config *idm.IDMConfig, cmd *cobra.Command) {
	body := flags.MustGetDefinedString(FlagBody, cmd.Flags())

	var organization api.Organization
	if err := json.Unmarshal([]byte(body), &organization); err != nil {
		glog.Fatalf("Invalid organization payload: %s", err.Error())
	}

	manager := buildManager(config, cmd)
	created, err := manager.Create(cmd.Context(), organization)
	if err != nil {
		glog.Fatalf("Unable to create organization: %s", err.Error())
	}
	printJSON(created)
}
