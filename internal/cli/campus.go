package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/printadmin/internal/models"
	"github.com/example/printadmin/internal/wire"
)

var campusCmd = &cobra.Command{
	Use:   "campus",
	Short: "Manage campuses",
	Long:  "List, create, update and delete campuses on the print-shop backend",
}

var campusListCmd = &cobra.Command{
	Use:   "list",
	Short: "List campuses",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.CampusAdapter().List(NewContext())
	},
}

var campusShowCmd = &cobra.Command{
	Use:   "show [campus-id]",
	Short: "Show campus details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.CampusAdapter().Show(NewContext(), args[0])
	},
}

var campusCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a campus",
	Long: `Create a campus. Name and location are both required.

Examples:
  printadmin campus create --name "North Campus" --location "123 Main St"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.CampusAdapter().Create(NewContext(), campusPayloadFromFlags(cmd))
	},
}

var campusUpdateCmd = &cobra.Command{
	Use:   "update [campus-id]",
	Short: "Update a campus",
	Long:  "Update a campus. Only the flags you pass are sent.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.CampusAdapter().Update(NewContext(), args[0], campusPayloadFromFlags(cmd))
	},
}

var campusDeleteCmd = &cobra.Command{
	Use:   "delete [campus-id]",
	Short: "Delete a campus",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.CampusAdapter().Delete(NewContext(), args[0])
	},
}

// campusPayloadFromFlags sets only the fields whose flags were given, so an
// explicit empty value still reaches validation.
func campusPayloadFromFlags(cmd *cobra.Command) models.CampusPayload {
	var p models.CampusPayload
	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		p.Name = &name
	}
	if cmd.Flags().Changed("location") {
		location, _ := cmd.Flags().GetString("location")
		p.Location = &location
	}
	return p
}

// CampusCmd returns the campus command
func CampusCmd() *cobra.Command {
	for _, c := range []*cobra.Command{campusCreateCmd, campusUpdateCmd} {
		c.Flags().StringP("name", "n", "", "Campus name")
		c.Flags().StringP("location", "l", "", "Campus location")
	}

	campusCmd.AddCommand(campusListCmd)
	campusCmd.AddCommand(campusShowCmd)
	campusCmd.AddCommand(campusCreateCmd)
	campusCmd.AddCommand(campusUpdateCmd)
	campusCmd.AddCommand(campusDeleteCmd)

	return campusCmd
}
