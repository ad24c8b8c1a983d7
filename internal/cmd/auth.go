package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dooooug/QuimiDocs-Deploy/internal/api"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/domain"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/errors"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/rbac"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/tui"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the backend",
	Long: `Sign in with your e-mail and password.

The access token and your profile are stored under the state directory
so later commands run authenticated. Without --email/--password an
interactive form opens.

Examples:
  quimidocs login
  quimidocs login --email voce@empresa.com.br --password 'minha senha'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if email == "" || password == "" {
			if !tui.ShouldPrompt() {
				return errors.New(errors.ErrCodeAuthBadCredentials,
					"--email and --password are required when not running interactively")
			}
			values, err := tui.LoginForm()
			if err != nil {
				return err
			}
			email, password = values.Email, values.Senha
		}

		resp, err := a.client.Login(cmd.Context(), email, password)
		if err != nil {
			return loginError(err)
		}

		if err := a.store.Login(resp.AccessToken, resp.User); err != nil {
			return err
		}

		a.printSuccess("Autenticado como %s (%s)", resp.User.Username, resp.User.Role.Label())
		printLanding(a, &resp.User)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		if !a.store.Authenticated() {
			a.printNotice("Nenhuma sessão ativa.")
			return nil
		}

		user := a.store.User()
		if err := a.store.Logout(); err != nil {
			return err
		}
		a.printSuccess("Sessão de %s encerrada.", user.Username)
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new user account",
	Long: `Register a new user account.

The backend only accepts registrations from an administrator session;
other roles get an access-denied response.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if _, err := a.requireRole("cadastrar usuários", rbac.UserManagement...); err != nil {
			return err
		}

		values, err := tui.RegisterForm()
		if err != nil {
			return err
		}

		resp, err := a.client.Register(cmd.Context(), api.RegisterRequest{
			NomeDoUsuario:    values.NomeDoUsuario,
			Email:            values.Email,
			Senha:            values.Senha,
			Nivel:            values.Nivel,
			CPF:              values.CPF,
			Empresa:          values.Empresa,
			Setor:            values.Setor,
			DataDeNascimento: values.DataDeNascimento,
			Planta:           values.Planta,
		})
		if err != nil {
			if apiErr, ok := err.(*api.APIError); ok && apiErr.IsForbidden() {
				return errors.New(errors.ErrCodeAuthRegisterDenied, apiErr.Message).
					WithSuggestion("Apenas administradores podem cadastrar usuários")
			}
			return err
		}

		name := values.NomeDoUsuario
		if resp.User != nil {
			name = resp.User.Username
		}
		a.printSuccess("Usuário %s cadastrado.", name)
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		sess := a.store.Current()
		if sess == nil {
			a.printNotice("Não autenticado. Use 'quimidocs login'.")
			return nil
		}

		fmt.Printf("Usuário:  %s\n", sess.User.Username)
		fmt.Printf("E-mail:   %s\n", sess.User.Email)
		fmt.Printf("Nível:    %s\n", sess.User.Role.Label())
		if sess.User.Empresa != "" {
			fmt.Printf("Empresa:  %s\n", sess.User.Empresa)
		}

		if exp, err := api.TokenExpiry(sess.Token); err == nil {
			if api.TokenExpired(sess.Token) {
				fmt.Println(a.styles.Warning.Render("Token expirado — faça login novamente."))
			} else {
				fmt.Printf("Token válido até %s\n", exp.Local().Format("02/01/2006 15:04"))
			}
		}
		return nil
	},
}

// loginError keeps the server's own message when the backend rejected
// the credentials, and wraps anything else as a network failure.
func loginError(err error) error {
	if apiErr, ok := err.(*api.APIError); ok && apiErr.IsAuthFailure() {
		return errors.New(errors.ErrCodeAuthBadCredentials, apiErr.Message).
			WithSuggestion("Confira o e-mail e a senha e tente novamente")
	}
	return err
}

// printLanding shows the post-login summary in place of the web app's
// dashboard redirect.
func printLanding(a *app, user *domain.User) {
	a.printNotice("Comandos disponíveis para o seu nível:")
	a.printNotice("  products list — catálogo de produtos aprovados")
	if rbac.HasRole(user, rbac.ProductRegistration...) {
		a.printNotice("  products register / edit — cadastro e edição")
		a.printNotice("  dashboard — indicadores e gráficos")
	}
	if rbac.HasRole(user, rbac.ProductApproval...) {
		a.printNotice("  products pending / approve / reject — fila de aprovação")
		a.printNotice("  users — gestão de usuários")
	}
}

func init() {
	loginCmd.Flags().String("email", "", "E-mail address")
	loginCmd.Flags().String("password", "", "Password")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(statusCmd)
}
