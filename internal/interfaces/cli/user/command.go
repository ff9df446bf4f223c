// Package user provisions accounts from the command line.
package user

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/application/user/usecases"
	"github.com/orris-inc/helpdesk/internal/infrastructure/auth"
	"github.com/orris-inc/helpdesk/internal/infrastructure/config"
	"github.com/orris-inc/helpdesk/internal/infrastructure/database"
	"github.com/orris-inc/helpdesk/internal/infrastructure/repository"
	"github.com/orris-inc/helpdesk/internal/interfaces/cli/bootstrap"
	"github.com/orris-inc/helpdesk/internal/shared/db"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

var opts bootstrap.Options

type createFlags struct {
	username   string
	email      string
	password   string
	role       string
	fullName   string
	department string
	inactive   bool
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Account provisioning",
		Long:  `Create staff and administrator accounts without email verification, singly or from a YAML file.`,
	}

	bootstrap.AddFlags(cmd, &opts)

	cmd.AddCommand(
		newCreateCommand(),
		newImportCommand(),
	)

	return cmd
}

func newCreateCommand() *cobra.Command {
	var f createFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create one account",
		Example: `  helpdesk user create --username admin --email admin@corp.example --role admin
  helpdesk user create --username sam --email sam@corp.example --role it_staff --full-name "Sam Lee"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.password == "" {
				pw, err := promptPassword(cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				f.password = pw
			}

			return withCreateUser(func(ctx context.Context, uc *usecases.CreateUserUseCase, _ logger.Interface) error {
				u, err := uc.Execute(ctx, usecases.CreateUserCommand{
					Username:   f.username,
					Email:      f.email,
					Password:   f.password,
					FullName:   f.fullName,
					Department: f.department,
					Role:       f.role,
					Active:     !f.inactive,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s (id %d, role %s)\n", u.Username, u.ID, u.Role)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&f.username, "username", "", "Username (required)")
	cmd.Flags().StringVar(&f.email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&f.password, "password", "", "Password; prompted for when omitted")
	cmd.Flags().StringVar(&f.role, "role", "employee", "Role: employee, it_staff, hr or admin")
	cmd.Flags().StringVar(&f.fullName, "full-name", "", "Full name")
	cmd.Flags().StringVar(&f.department, "department", "", "Department")
	cmd.Flags().BoolVar(&f.inactive, "inactive", false, "Create the account inactive")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Create accounts from a YAML seed file",
		Long:  `Create every account listed in the file. Accounts whose username or email already exists are skipped.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open import file: %w", err)
			}
			defer file.Close()

			return withCreateUser(func(ctx context.Context, uc *usecases.CreateUserUseCase, log logger.Interface) error {
				result, err := usecases.NewImportUsersUseCase(uc, log).Execute(ctx, file)
				if err != nil {
					return err
				}
				printImportResult(cmd.OutOrStdout(), result)
				if len(result.Failed) > 0 {
					return fmt.Errorf("%d account(s) could not be created", len(result.Failed))
				}
				return nil
			})
		},
	}
}

func withCreateUser(fn func(ctx context.Context, uc *usecases.CreateUserUseCase, log logger.Interface) error) error {
	cfg, log, err := bootstrap.Load(&opts)
	if err != nil {
		return err
	}
	gdb, err := bootstrap.OpenDatabase(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	return fn(context.Background(), newCreateUserUseCase(gdb, cfg, log), log)
}

func newCreateUserUseCase(gdb *gorm.DB, cfg *config.Config, log logger.Interface) *usecases.CreateUserUseCase {
	return usecases.NewCreateUserUseCase(
		repository.NewUserRepository(gdb),
		auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		db.NewTransactionManager(gdb),
		log,
	)
}

func promptPassword(out io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("--password is required when stdin is not a terminal")
	}

	fmt.Fprint(out, "Password: ")
	first, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", err
	}
	fmt.Fprint(out, "Confirm password: ")
	second, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", err
	}
	if string(first) != string(second) {
		return "", fmt.Errorf("passwords do not match")
	}
	return string(first), nil
}

func printImportResult(out io.Writer, r *usecases.ImportUsersResult) {
	fmt.Fprintf(out, "created: %d, skipped: %d, failed: %d\n", len(r.Created), len(r.Skipped), len(r.Failed))
	if len(r.Created) > 0 {
		fmt.Fprintf(out, "  created: %s\n", strings.Join(r.Created, ", "))
	}
	if len(r.Skipped) > 0 {
		fmt.Fprintf(out, "  skipped (already exist): %s\n", strings.Join(r.Skipped, ", "))
	}

	keys := make([]string, 0, len(r.Failed))
	for k := range r.Failed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "  failed %s: %s\n", k, r.Failed[k])
	}
}
