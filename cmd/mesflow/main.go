// Command mesflow runs the manufacturing execution web application and its
// maintenance commands.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/mesflow/internal/cli"
	"github.com/terraincognita07/mesflow/internal/config"
	"github.com/terraincognita07/mesflow/internal/logging"
	"github.com/terraincognita07/mesflow/internal/models"
	"github.com/terraincognita07/mesflow/internal/services"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var envFile string
	var conf *config.Config

	rootCmd := &cobra.Command{
		Use:           "mesflow",
		Short:         "Manufacturing orders, work orders and inventory in one web app",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(envFile)
			if err != nil {
				return err
			}
			conf = loaded
			logging.Configure(cmd.ErrOrStderr(), conf.LogLevel, conf.DevMode)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), conf)
		},
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file loaded before the MESFLOW_* environment")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), conf)
		},
	}

	var resetEmail string
	resetCmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Assign a temporary password that must be changed on next login",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunResetPasswordCommand(conf.DBPath, resetEmail, cmd.OutOrStdout())
		},
	}
	resetCmd.Flags().StringVar(&resetEmail, "email", "", "email of the account to reset")
	_ = resetCmd.MarkFlagRequired("email")

	var newUser services.SignupInput
	createUserCmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create an account; the password is read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := cli.NewPasswordPrompt(os.Stdin, cmd.OutOrStdout())
			return cli.RunCreateUserCommand(conf.DBPath, newUser, prompt, cmd.OutOrStdout())
		},
	}
	createUserCmd.Flags().StringVar(&newUser.Username, "username", "", "login name")
	createUserCmd.Flags().StringVar(&newUser.Email, "email", "", "email address")
	createUserCmd.Flags().StringVar(&newUser.Role, "role", models.RoleAdmin, "one of admin, manager, operator, inventory")
	_ = createUserCmd.MarkFlagRequired("username")
	_ = createUserCmd.MarkFlagRequired("email")

	var exportPath string
	exportCmd := &cobra.Command{
		Use:   "export-orders",
		Short: "Write all manufacturing orders to an xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunExportOrdersCommand(conf.DBPath, exportPath, cmd.OutOrStdout())
		},
	}
	exportCmd.Flags().StringVarP(&exportPath, "out", "o", services.OrdersExportName, "output file")

	rootCmd.AddCommand(serveCmd, resetCmd, createUserCmd, exportCmd)
	return rootCmd
}
