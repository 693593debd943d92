package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/example/printadmin/internal/models"
	"github.com/example/printadmin/internal/ports/primary"
	"github.com/example/printadmin/internal/wire"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Manage print shops",
	Long:  "List, create, update and delete print shops. Each shop belongs to one campus.",
}

var shopListCmd = &cobra.Command{
	Use:   "list",
	Short: "List shops",
	Long: `List shops, optionally filtered.

Examples:
  printadmin shop list --campus c1
  printadmin shop list --execution-mode auto --active
  printadmin shop list --group-by payment`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filters, err := shopFiltersFromFlags(cmd)
		if err != nil {
			return err
		}
		groupBy, _ := cmd.Flags().GetString("group-by")
		return wire.ShopAdapter().List(NewContext(), filters, groupBy)
	},
}

var shopShowCmd = &cobra.Command{
	Use:   "show [shop-id]",
	Short: "Show shop details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.ShopAdapter().Show(NewContext(), args[0])
	},
}

var shopModesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List execution and payment modes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.ShopAdapter().Modes()
	},
}

var shopCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a shop",
	Long: `Create a shop on a campus. Modes default to manual execution and counter payment.

Examples:
  printadmin shop create --campus c1 --name "Library Print Hub" --execution-mode auto --payment-mode both`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := shopPayloadFromFlags(cmd)
		if p.ExecutionMode == nil {
			p.ExecutionMode = models.Ptr(models.ExecutionManual)
		}
		if p.PaymentMode == nil {
			p.PaymentMode = models.Ptr(models.PaymentCounter)
		}
		if p.IsActive == nil {
			p.IsActive = models.Ptr(true)
		}
		return wire.ShopAdapter().Create(NewContext(), p)
	},
}

var shopUpdateCmd = &cobra.Command{
	Use:   "update [shop-id]",
	Short: "Update a shop",
	Long: `Update a shop. Only the flags you pass are sent; the campus cannot change.

Examples:
  printadmin shop update s1 --active=false
  printadmin shop update s1 --payment-mode prepaid`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.ShopAdapter().Update(NewContext(), args[0], shopPayloadFromFlags(cmd))
	},
}

var shopDeleteCmd = &cobra.Command{
	Use:   "delete [shop-id]",
	Short: "Delete a shop",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.ShopAdapter().Delete(NewContext(), args[0])
	},
}

func shopFiltersFromFlags(cmd *cobra.Command) (primary.ShopFilters, error) {
	var f primary.ShopFilters
	f.CampusID, _ = cmd.Flags().GetString("campus")
	f.ExecutionMode, _ = cmd.Flags().GetString("execution-mode")
	f.PaymentMode, _ = cmd.Flags().GetString("payment-mode")

	active, _ := cmd.Flags().GetBool("active")
	inactive, _ := cmd.Flags().GetBool("inactive")
	switch {
	case active && inactive:
		return f, errors.New("--active and --inactive are mutually exclusive")
	case active:
		f.Active = models.Ptr(true)
	case inactive:
		f.Active = models.Ptr(false)
	}
	return f, nil
}

// shopPayloadFromFlags sets only the fields whose flags were given. Mode
// strings pass through unchecked; validation reports unknown values.
func shopPayloadFromFlags(cmd *cobra.Command) models.ShopPayload {
	var p models.ShopPayload
	flags := cmd.Flags()
	if flags.Changed("campus") {
		campusID, _ := flags.GetString("campus")
		p.CampusID = &campusID
	}
	if flags.Changed("name") {
		name, _ := flags.GetString("name")
		p.Name = &name
	}
	if flags.Changed("execution-mode") {
		mode, _ := flags.GetString("execution-mode")
		p.ExecutionMode = models.Ptr(models.ExecutionMode(mode))
	}
	if flags.Changed("payment-mode") {
		mode, _ := flags.GetString("payment-mode")
		p.PaymentMode = models.Ptr(models.PaymentMode(mode))
	}
	if flags.Changed("active") {
		active, _ := flags.GetBool("active")
		p.IsActive = &active
	}
	return p
}

// addShopListFilterFlags registers the filters accepted by shop list.
func addShopListFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("campus", "c", "", "Filter by campus ID")
	cmd.Flags().String("execution-mode", "", "Filter by execution mode (manual, assisted, auto)")
	cmd.Flags().String("payment-mode", "", "Filter by payment mode (counter, prepaid, both)")
	cmd.Flags().Bool("active", false, "Only active shops")
	cmd.Flags().Bool("inactive", false, "Only inactive shops")
	cmd.Flags().String("group-by", "", "Group by execution or payment mode")
}

// addShopPayloadFlags registers the shop fields shared by create and update.
func addShopPayloadFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("name", "n", "", "Shop name")
	cmd.Flags().String("execution-mode", "", "Execution mode (manual, assisted, auto)")
	cmd.Flags().String("payment-mode", "", "Payment mode (counter, prepaid, both)")
	cmd.Flags().Bool("active", true, "Whether the shop accepts print jobs")
}

// ShopCmd returns the shop command
func ShopCmd() *cobra.Command {
	addShopListFilterFlags(shopListCmd)

	shopCreateCmd.Flags().StringP("campus", "c", "", "Campus ID")
	addShopPayloadFlags(shopCreateCmd)
	addShopPayloadFlags(shopUpdateCmd)

	shopCmd.AddCommand(shopListCmd)
	shopCmd.AddCommand(shopShowCmd)
	shopCmd.AddCommand(shopModesCmd)
	shopCmd.AddCommand(shopCreateCmd)
	shopCmd.AddCommand(shopUpdateCmd)
	shopCmd.AddCommand(shopDeleteCmd)

	return shopCmd
}
