package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dooooug/QuimiDocs-Deploy/internal/api"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/errors"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/rbac"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/table"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/tui"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user accounts (administrators only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all user accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if _, err := a.requireRole("gerenciar usuários", rbac.UserManagement...); err != nil {
			return err
		}

		users, err := a.client.GetAllUsers(cmd.Context())
		if err != nil {
			return err
		}
		if len(users) == 0 {
			a.printNotice("Nenhum usuário cadastrado.")
			return nil
		}

		model := table.New(table.UserColumns(), table.UserRows(users))
		columns := model.Columns()
		titles := make([]string, len(columns))
		for i, col := range columns {
			titles[i] = col.Title
		}
		fmt.Println(strings.Join(titles, "\t"))
		for _, row := range model.View() {
			fmt.Println(strings.Join(row.Cells, "\t"))
		}
		return nil
	},
}

var usersEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a user account",
	Long: `Edit a user account through the interactive form.

Leaving the password field blank keeps the current password.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if _, err := a.requireRole("gerenciar usuários", rbac.UserManagement...); err != nil {
			return err
		}

		users, err := a.client.GetAllUsers(cmd.Context())
		if err != nil {
			return err
		}

		target := -1
		for i := range users {
			if users[i].EffectiveID() == args[0] {
				target = i
				break
			}
		}
		if target < 0 {
			return errors.New(errors.ErrCodeUserNotFound,
				fmt.Sprintf("usuário %s não encontrado", args[0]))
		}

		user := users[target]
		senha, err := tui.UserEditForm(&user)
		if err != nil {
			return err
		}

		_, err = a.client.UpdateUser(cmd.Context(), args[0], api.UserUpdate{
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
			Senha:    senha,
			CPF:      user.CPF,
			Empresa:  user.Empresa,
			Setor:    user.Setor,
			Planta:   user.Planta,
		})
		if err != nil {
			return err
		}
		a.printSuccess("Usuário %s atualizado.", user.Username)
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		sess, err := a.requireRole("gerenciar usuários", rbac.UserManagement...)
		if err != nil {
			return err
		}
		if sess.User.EffectiveID() == args[0] {
			return errors.New(errors.ErrCodeUserInvalid,
				"você não pode excluir a própria conta")
		}

		yes, _ := cmd.Flags().GetBool("yes")
		deleted, err := a.confirmDelete(yes, "o usuário "+args[0], func() error {
			return a.client.DeleteUser(cmd.Context(), args[0])
		})
		if err != nil {
			return err
		}
		if !deleted {
			a.printNotice("Exclusão cancelada.")
			return nil
		}
		a.printSuccess("Usuário %s excluído.", args[0])
		return nil
	},
}

func init() {
	usersDeleteCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersEditCmd)
	usersCmd.AddCommand(usersDeleteCmd)

	rootCmd.AddCommand(usersCmd)
}
