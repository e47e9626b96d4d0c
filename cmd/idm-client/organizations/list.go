package organizations

import (
	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/api"
	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/client/idm"
	"github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/flags"
)

func NewListCommand(config *idm.IDMConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List organizations",
		Long:  "List organizations, one page at a time.",
		Run: func(cmd *cobra.Command, args []string) {
			runList(config, cmd)
		},
	}

	cmd.Flags().Int(FlagPerPage, 50, "Number of organizations per page")
	cmd.Flags().Int(FlagPage, 0, "Zero-indexed page to list")

	return cmd
}

func runList(config *idm.IDMConfig, cmd *cobra.Command) {
	page := &api.PageParams{
		PerPage: flags.MustGetInt(FlagPerPage, cmd.Flags()),
		Page:    flags.MustGetInt(FlagPage, cmd.Flags()),
	}

	manager := buildManager(config, cmd)
	organizations, err := manager.GetAll(cmd.Context(), page)
	if err != nil {
		glog.Fatalf("Unable to list organizations: %s", err.Error())
	}
	printJSON(organizations)
}
