package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/Dooooug/QuimiDocs-Deploy/internal/cas"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/domain"
)

// LoginValues carries the credentials the login form collected.
type LoginValues struct {
	Email string
	Senha string
}

// RegisterValues carries the fields of the user registration form.
type RegisterValues struct {
	NomeDoUsuario    string
	Email            string
	Senha            string
	Nivel            domain.Role
	CPF              string
	Empresa          string
	Setor            string
	DataDeNascimento string
	Planta           string
}

// Required rejects blank input, naming the field in the message.
func Required(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s é obrigatório", name)
		}
		return nil
	}
}

// ValidCAS accepts a blank CAS number and otherwise requires a
// well-formed one with a matching check digit.
func ValidCAS(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if !cas.IsValid(s) {
		return fmt.Errorf("número CAS inválido: %s", s)
	}
	return nil
}

// LoginForm prompts for the sign-in credentials.
func LoginForm() (LoginValues, error) {
	var v LoginValues

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("E-mail").
				Placeholder("voce@empresa.com.br").
				Value(&v.Email).
				Validate(Required("e-mail")),
			huh.NewInput().
				Title("Senha").
				EchoMode(huh.EchoModePassword).
				Value(&v.Senha).
				Validate(Required("senha")),
		).Title("Entrar no QuimiDocs"),
	)

	if err := form.Run(); err != nil {
		return LoginValues{}, fmt.Errorf("login form: %w", err)
	}
	return v, nil
}

// RegisterForm prompts for the fields of a new user account.
func RegisterForm() (RegisterValues, error) {
	var v RegisterValues
	nivel := string(domain.RoleViewer)

	roleOptions := make([]huh.Option[string], 0, len(domain.AllRoles()))
	for _, r := range domain.AllRoles() {
		roleOptions = append(roleOptions, huh.NewOption(r.Label(), string(r)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Nome de usuário").
				Value(&v.NomeDoUsuario).
				Validate(Required("nome de usuário")),
			huh.NewInput().
				Title("E-mail").
				Value(&v.Email).
				Validate(Required("e-mail")),
			huh.NewInput().
				Title("Senha").
				EchoMode(huh.EchoModePassword).
				Value(&v.Senha).
				Validate(Required("senha")),
			huh.NewSelect[string]().
				Title("Nível de acesso").
				Options(roleOptions...).
				Value(&nivel),
		).Title("Cadastrar usuário"),
		huh.NewGroup(
			huh.NewInput().Title("CPF").Value(&v.CPF),
			huh.NewInput().Title("Empresa").Value(&v.Empresa),
			huh.NewInput().Title("Setor").Value(&v.Setor),
			huh.NewInput().Title("Data de nascimento").Placeholder("AAAA-MM-DD").Value(&v.DataDeNascimento),
			huh.NewInput().Title("Planta").Value(&v.Planta),
		).Title("Dados complementares"),
	)

	if err := form.Run(); err != nil {
		return RegisterValues{}, fmt.Errorf("register form: %w", err)
	}
	v.Nivel = domain.Role(nivel)
	return v, nil
}

// ProductForm edits a product in place. For a new registration the
// product arrives zeroed except for the pre-fetched code; for edits
// the current values show as defaults.
func ProductForm(p *domain.Product) error {
	selectOptions := func(values []string) []huh.Option[string] {
		opts := make([]huh.Option[string], len(values))
		for i, v := range values {
			opts[i] = huh.NewOption(v, v)
		}
		return opts
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Nome do produto").
				Value(&p.NomeDoProduto).
				Validate(Required("nome do produto")),
			huh.NewInput().
				Title("Fornecedor").
				Value(&p.Fornecedor).
				Validate(Required("fornecedor")),
			huh.NewSelect[string]().
				Title("Empresa").
				Options(selectOptions(Empresas)...).
				Value(&p.Empresa),
			huh.NewSelect[string]().
				Title("Estado físico").
				Options(selectOptions(EstadosFisicos)...).
				Value(&p.EstadoFisico),
			huh.NewSelect[string]().
				Title("Local de armazenamento").
				Options(selectOptions(LocaisDeArmazenamento)...).
				Value(&p.LocalDeArmazenamento),
			huh.NewInput().
				Title("Quantidade máxima armazenada").
				Value(&p.QtadeMaximaArmazenada),
		).Title("Dados do produto"),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Perigos físicos").
				Options(selectOptions(PerigosFisicos)...).
				Value(&p.PerigosFisicos),
			huh.NewMultiSelect[string]().
				Title("Perigos à saúde").
				Options(selectOptions(PerigosSaude)...).
				Value(&p.PerigosSaude),
			huh.NewMultiSelect[string]().
				Title("Perigos ao meio ambiente").
				Options(selectOptions(PerigosMeioAmbiente)...).
				Value(&p.PerigosMeioAmbiente),
			huh.NewSelect[string]().
				Title("Palavra de perigo").
				Options(selectOptions(PalavrasDePerigo)...).
				Value(&p.PalavraDePerigo),
			huh.NewInput().
				Title("Categoria").
				Value(&p.Categoria),
		).Title("Classificação GHS"),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("product form: %w", err)
	}

	if err := substanceForm(p); err != nil {
		return err
	}
	p.PruneSubstances()

	if missing := p.RequiredFieldsMissing(); len(missing) > 0 {
		return fmt.Errorf("campos obrigatórios em branco: %s", strings.Join(missing, ", "))
	}
	return nil
}

// substanceForm edits the existing substance rows, then keeps offering
// a fresh row until the user declines.
func substanceForm(p *domain.Product) error {
	for i := range p.Substancias {
		if err := editSubstance(&p.Substancias[i], fmt.Sprintf("Substância %d", i+1)); err != nil {
			return err
		}
	}

	for {
		more, err := Confirm("Adicionar substância?", len(p.Substancias) == 0)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}

		var s domain.Substance
		if err := editSubstance(&s, fmt.Sprintf("Substância %d", len(p.Substancias)+1)); err != nil {
			return err
		}
		p.Substancias = append(p.Substancias, s)
	}
}

func editSubstance(s *domain.Substance, title string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Substância").Value(&s.Nome),
			huh.NewInput().
				Title("Número CAS").
				Placeholder("7732-18-5").
				Value(&s.CAS).
				Validate(ValidCAS),
			huh.NewInput().Title("Concentração (%)").Value(&s.Concentracao),
		).Title(title),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("substance form: %w", err)
	}
	return nil
}

// UserEditForm edits a user in place and returns the new password, or
// the empty string to keep the current one.
func UserEditForm(u *domain.User) (string, error) {
	nivel := string(u.Role)
	var senha string

	roleOptions := make([]huh.Option[string], 0, len(domain.AllRoles()))
	for _, r := range domain.AllRoles() {
		roleOptions = append(roleOptions, huh.NewOption(r.Label(), string(r)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Nome de usuário").
				Value(&u.Username).
				Validate(Required("nome de usuário")),
			huh.NewInput().
				Title("E-mail").
				Value(&u.Email).
				Validate(Required("e-mail")),
			huh.NewSelect[string]().
				Title("Nível de acesso").
				Options(roleOptions...).
				Value(&nivel),
			huh.NewInput().
				Title("Nova senha").
				Description("Deixe em branco para manter a senha atual.").
				EchoMode(huh.EchoModePassword).
				Value(&senha),
		).Title("Editar usuário"),
		huh.NewGroup(
			huh.NewInput().Title("CPF").Value(&u.CPF),
			huh.NewInput().Title("Empresa").Value(&u.Empresa),
			huh.NewInput().Title("Setor").Value(&u.Setor),
			huh.NewInput().Title("Planta").Value(&u.Planta),
		).Title("Dados complementares"),
	)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("user form: %w", err)
	}
	u.Role = domain.Role(nivel)
	return senha, nil
}
