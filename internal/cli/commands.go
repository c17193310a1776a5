package cli

import (
	"errors"
	"fmt"
	"io"
	"net/mail"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/terraincognita07/mesflow/internal/db"
	"github.com/terraincognita07/mesflow/internal/services"
	"gorm.io/gorm"
)

func RunResetPasswordCommand(dbPath string, email string, out io.Writer) error {
	normalizedEmail := services.NormalizeEmail(email)
	if normalizedEmail == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}

	return withRepositories(dbPath, func(repos *db.Repositories) error {
		temporaryPassword, err := services.NewAuthService(repos.Users).ResetPassword(normalizedEmail)
		if errors.Is(err, services.ErrNotFound) {
			return fmt.Errorf("user %s not found", normalizedEmail)
		}
		if err != nil {
			return err
		}

		log.Info().Str("email", normalizedEmail).Msg("password reset from command line")
		fmt.Fprintln(out, "Password reset successful")
		fmt.Fprintf(out, "Temporary password: %s\n", temporaryPassword)
		fmt.Fprintln(out, "User must change password on next login.")
		return nil
	})
}

// RunCreateUserCommand registers a user whose password is read from prompt.
func RunCreateUserCommand(dbPath string, input services.SignupInput, prompt *PasswordPrompt, out io.Writer) error {
	password, err := prompt.NewPassword()
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	input.Password = password

	return withRepositories(dbPath, func(repos *db.Repositories) error {
		user, err := services.NewAuthService(repos.Users).Register(input)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		fmt.Fprintf(out, "Created %s user %s (id %d)\n", user.Role, user.Email, user.ID)
		return nil
	})
}

func RunExportOrdersCommand(dbPath string, outPath string, out io.Writer) error {
	if outPath == "" {
		outPath = services.OrdersExportName
	}

	return withRepositories(dbPath, func(repos *db.Repositories) error {
		content, err := services.NewExportService(repos.Orders).OrdersWorkbook()
		if err != nil {
			return err
		}
		if dir := filepath.Dir(outPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
		}
		if err := os.WriteFile(outPath, content, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		fmt.Fprintf(out, "Orders exported to %s\n", outPath)
		return nil
	})
}

func withRepositories(dbPath string, run func(repos *db.Repositories) error) error {
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer closeDatabase(database)
	return run(db.NewRepositories(database))
}

func closeDatabase(database *gorm.DB) {
	sqlDB, err := database.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}
