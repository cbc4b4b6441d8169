package commands

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/scrimhub/internal/bootstrap"
	"github.com/MGTheTrain/scrimhub/internal/domain/memberships"
	"github.com/MGTheTrain/scrimhub/internal/pkg/config"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// BillingCommandsHandler handles membership plan and wallet bonus commands
type BillingCommandsHandler struct{}

// AddPlanCmd creates a membership plan
func (h *BillingCommandsHandler) AddPlanCmd(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	priceStr, _ := cmd.Flags().GetString("price")
	currency, _ := cmd.Flags().GetString("currency")
	interval, _ := cmd.Flags().GetString("interval")
	inactive, _ := cmd.Flags().GetBool("inactive")

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", priceStr, err)
	}

	return withRuntime(cmd, func(ctx context.Context, rt *bootstrap.Runtime, cfg *config.RestConfig, log logger.Logger) error {
		if currency == "" {
			currency = cfg.Payments.DefaultCurrency
		}
		plan, err := rt.Services.Memberships.CreatePlan(ctx, memberships.PlanInput{
			Name:        name,
			Description: description,
			Price:       price,
			Currency:    currency,
			Interval:    interval,
			IsActive:    !inactive,
		})
		if err != nil {
			return fmt.Errorf("failed to create plan: %w", err)
		}
		log.Info(fmt.Sprintf("Created plan %s (%s %s per %s)", plan.ID, plan.Price.StringFixed(2), plan.Currency, plan.Interval))
		return nil
	})
}

// AddBonusTierCmd adds a wallet top-up bonus tier
func (h *BillingCommandsHandler) AddBonusTierCmd(cmd *cobra.Command, args []string) error {
	minAmountStr, _ := cmd.Flags().GetString("min-amount")
	bonusPercentStr, _ := cmd.Flags().GetString("bonus-percent")

	minAmount, err := decimal.NewFromString(minAmountStr)
	if err != nil {
		return fmt.Errorf("invalid min amount %q: %w", minAmountStr, err)
	}
	bonusPercent, err := decimal.NewFromString(bonusPercentStr)
	if err != nil {
		return fmt.Errorf("invalid bonus percent %q: %w", bonusPercentStr, err)
	}

	return withRuntime(cmd, func(ctx context.Context, rt *bootstrap.Runtime, cfg *config.RestConfig, log logger.Logger) error {
		tier, err := rt.Services.Payments.AddBonusTier(ctx, minAmount, bonusPercent)
		if err != nil {
			return fmt.Errorf("failed to add bonus tier: %w", err)
		}
		log.Info(fmt.Sprintf("Added bonus tier %s: %s%% from %s", tier.ID, tier.BonusPercent.String(), tier.MinAmount.StringFixed(2)))
		return nil
	})
}

// InitBillingCommands registers billing catalog commands
func InitBillingCommands(rootCmd *cobra.Command) error {
	handler := &BillingCommandsHandler{}

	addPlanCmd := &cobra.Command{
		Use:   "add-plan",
		Short: "Create a membership plan",
		RunE:  handler.AddPlanCmd,
	}
	addPlanCmd.Flags().String("name", "", "Plan name")
	addPlanCmd.Flags().String("description", "", "Plan description")
	addPlanCmd.Flags().String("price", "", "Price per interval, e.g. 9.99")
	addPlanCmd.Flags().String("currency", "", "ISO 4217 currency code (defaults to payments.default_currency)")
	addPlanCmd.Flags().String("interval", memberships.IntervalMonth, "Billing interval: month or year")
	addPlanCmd.Flags().Bool("inactive", false, "Create the plan hidden from members")
	if err := markRequired(addPlanCmd, "name", "price"); err != nil {
		return err
	}
	rootCmd.AddCommand(addPlanCmd)

	addBonusTierCmd := &cobra.Command{
		Use:   "add-bonus-tier",
		Short: "Add a wallet top-up bonus tier",
		RunE:  handler.AddBonusTierCmd,
	}
	addBonusTierCmd.Flags().String("min-amount", "", "Smallest top-up amount the tier applies to")
	addBonusTierCmd.Flags().String("bonus-percent", "", "Bonus credited on top of the top-up, in percent")
	if err := markRequired(addBonusTierCmd, "min-amount", "bonus-percent"); err != nil {
		return err
	}
	rootCmd.AddCommand(addBonusTierCmd)

	return nil
}
