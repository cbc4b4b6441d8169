package commands

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/scrimhub/internal/bootstrap"
	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/persistence"
	"github.com/MGTheTrain/scrimhub/internal/pkg/config"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// AccountCommandsHandler handles schema, policy and account administration commands
type AccountCommandsHandler struct{}

// MigrateCmd creates or updates the database schema
func (h *AccountCommandsHandler) MigrateCmd(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := bootstrap.OpenDatabase(cfg.Database, log)
	if err != nil {
		return err
	}
	return persistence.CloseDB(db)
}

// SeedPoliciesCmd persists the sign-in and lockout policies, falling back to defaults when none are saved
func (h *AccountCommandsHandler) SeedPoliciesCmd(cmd *cobra.Command, args []string) error {
	reset, _ := cmd.Flags().GetBool("reset")

	return withRuntime(cmd, func(ctx context.Context, rt *bootstrap.Runtime, cfg *config.RestConfig, log logger.Logger) error {
		admin := rt.Services.AccountAdmin

		policy := accounts.DefaultPolicy()
		lockout := accounts.DefaultLockoutPolicy()
		if !reset {
			// Saved policies are read back so the command is idempotent
			current, err := admin.GetPolicy(ctx)
			if err != nil {
				return fmt.Errorf("failed to read policy: %w", err)
			}
			policy = current
			currentLockout, err := admin.GetLockoutPolicy(ctx)
			if err != nil {
				return fmt.Errorf("failed to read lockout policy: %w", err)
			}
			lockout = currentLockout
		}

		if _, err := admin.UpdatePolicy(ctx, policy); err != nil {
			return fmt.Errorf("failed to save policy: %w", err)
		}
		if _, err := admin.UpdateLockoutPolicy(ctx, lockout); err != nil {
			return fmt.Errorf("failed to save lockout policy: %w", err)
		}

		log.Info(fmt.Sprintf("Policies saved (password=%t magic_link=%t email_otp=%t totp=%t, lockout %d/%d/%d)",
			policy.AllowPassword, policy.AllowMagicLink, policy.AllowEmailOTP, policy.AllowTOTP,
			lockout.Threshold1, lockout.Threshold2, lockout.Threshold3))
		return nil
	})
}

// CreateStaffCmd creates an administrator account
func (h *AccountCommandsHandler) CreateStaffCmd(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	fullName, _ := cmd.Flags().GetString("full-name")

	return withRuntime(cmd, func(ctx context.Context, rt *bootstrap.Runtime, cfg *config.RestConfig, log logger.Logger) error {
		user, err := rt.Services.AccountAdmin.CreateStaff(ctx, email, password, fullName)
		if err != nil {
			return fmt.Errorf("failed to create staff account: %w", err)
		}
		log.Info(fmt.Sprintf("Created staff account %s (%s)", user.ID, user.Email))
		return nil
	})
}

// AccountActionCmd applies an administrative action on behalf of a staff member
func (h *AccountCommandsHandler) AccountActionCmd(cmd *cobra.Command, args []string) error {
	actorEmail, _ := cmd.Flags().GetString("actor-email")
	userID, _ := cmd.Flags().GetString("user-id")
	action, _ := cmd.Flags().GetString("action")

	return withRuntime(cmd, func(ctx context.Context, rt *bootstrap.Runtime, cfg *config.RestConfig, log logger.Logger) error {
		actor, err := rt.Repos.Users.GetByEmail(ctx, actorEmail)
		if err != nil {
			return fmt.Errorf("failed to resolve actor %s: %w", actorEmail, err)
		}

		user, err := rt.Services.AccountAdmin.ApplyAccountAction(ctx, actor.ID, userID, action)
		if err != nil {
			return fmt.Errorf("failed to apply %s: %w", action, err)
		}
		log.Info(fmt.Sprintf("Applied %s to %s (active=%t locked=%t disabled=%t suspended=%t)",
			action, user.ID, user.IsActive, user.IsLocked, user.IsDisabled, user.IsSuspended))
		return nil
	})
}

// InitAccountCommands registers account administration commands
func InitAccountCommands(rootCmd *cobra.Command) error {
	handler := &AccountCommandsHandler{}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE:  handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	seedPoliciesCmd := &cobra.Command{
		Use:   "seed-policies",
		Short: "Store the sign-in and lockout policies",
		RunE:  handler.SeedPoliciesCmd,
	}
	seedPoliciesCmd.Flags().Bool("reset", false, "Overwrite saved policies with the defaults")
	rootCmd.AddCommand(seedPoliciesCmd)

	createStaffCmd := &cobra.Command{
		Use:   "create-staff",
		Short: "Create a staff account",
		RunE:  handler.CreateStaffCmd,
	}
	createStaffCmd.Flags().String("email", "", "Email address of the staff member")
	createStaffCmd.Flags().String("password", "", "Initial password (at least 8 characters)")
	createStaffCmd.Flags().String("full-name", "", "Display name")
	if err := markRequired(createStaffCmd, "email", "password"); err != nil {
		return err
	}
	rootCmd.AddCommand(createStaffCmd)

	accountActionCmd := &cobra.Command{
		Use:   "account-action",
		Short: "Lock, disable, suspend or delete an account",
		Long: fmt.Sprintf("Applies one of %v to the account given by --user-id.",
			[]string{
				accounts.AccountActionLock, accounts.AccountActionUnlock,
				accounts.AccountActionDisable, accounts.AccountActionEnable,
				accounts.AccountActionSuspend, accounts.AccountActionUnsuspend,
				accounts.AccountActionSoftDelete, accounts.AccountActionRestore,
				accounts.AccountActionRequestDelete, accounts.AccountActionCancelDelete,
				accounts.AccountActionHardDelete,
			}),
		RunE: handler.AccountActionCmd,
	}
	accountActionCmd.Flags().String("actor-email", "", "Email of the staff member performing the action")
	accountActionCmd.Flags().String("user-id", "", "Id of the target account")
	accountActionCmd.Flags().String("action", "", "Action to apply")
	if err := markRequired(accountActionCmd, "actor-email", "user-id", "action"); err != nil {
		return err
	}
	rootCmd.AddCommand(accountActionCmd)

	return nil
}

func markRequired(cmd *cobra.Command, flags ...string) error {
	for _, name := range flags {
		if err := cmd.MarkFlagRequired(name); err != nil {
			return fmt.Errorf("failed to mark %s flag as required: %w", name, err)
		}
	}
	return nil
}
