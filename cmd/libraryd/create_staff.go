package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/AntonStoeckl/library-admin-rpc/credentials"
	"github.com/AntonStoeckl/library-admin-rpc/shell/config"
)

const (
	flagUsername  = "username"
	flagEmail     = "email"
	flagStaff     = "staff"
	flagSuperuser = "superuser"
)

// errPasswordMismatch is returned when the confirmation differs from the password.
var errPasswordMismatch = errors.New("passwords do not match")

func newCreateStaffCommand(a *app) *cobra.Command {
	var (
		username    string
		email       string
		isStaff     bool
		isSuperuser bool
	)

	cmd := &cobra.Command{
		Use:   "create-staff",
		Short: "Create a staff account that can log in to the administration service",
		Long: "Create a staff account. The password is prompted for without echo on a terminal; " +
			"otherwise the first line of stdin is used.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isStaff && !isSuperuser {
				return errors.New("at least one of --staff or --superuser is required")
			}

			password, err := a.readNewPassword()
			if err != nil {
				return err
			}

			account, err := credentials.NewStaffAccount(username, email, password, isStaff, isSuperuser, time.Now())
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			storage, err := config.OpenStorage(ctx, a.cfg)
			if err != nil {
				return err
			}
			defer storage.Close()

			if err := storage.Migrate(ctx); err != nil {
				return err
			}

			if err := storage.StaffAccounts.Create(ctx, account); err != nil {
				return fmt.Errorf("create staff account %q: %w", account.Username, err)
			}

			a.newLogger().Info(logMsgStaffCreated, logAttrUsername, account.Username, logAttrUserID, account.ID)
			_, _ = fmt.Fprintln(a.stdout, account.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&username, flagUsername, "", "login name of the new account")
	cmd.Flags().StringVar(&email, flagEmail, "", "email address of the new account")
	cmd.Flags().BoolVar(&isStaff, flagStaff, false, "grant staff privileges")
	cmd.Flags().BoolVar(&isSuperuser, flagSuperuser, false, "grant superuser privileges; superusers cannot be deleted through the service")
	_ = cmd.MarkFlagRequired(flagUsername)

	return cmd
}

// readNewPassword prompts twice on a terminal. Piped input is read as a single line.
func (a *app) readNewPassword() (string, error) {
	if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := promptPassword(a.stderr, f, "Password: ")
		if err != nil {
			return "", err
		}

		confirmation, err := promptPassword(a.stderr, f, "Password (again): ")
		if err != nil {
			return "", err
		}

		if password != confirmation {
			return "", errPasswordMismatch
		}

		return password, nil
	}

	return readPasswordLine(a.stdin)
}

func promptPassword(prompt io.Writer, tty *os.File, label string) (string, error) {
	_, _ = fmt.Fprint(prompt, label)
	raw, err := term.ReadPassword(int(tty.Fd()))
	_, _ = fmt.Fprintln(prompt)

	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	return string(raw), nil
}

func readPasswordLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
