package api

import (
	"context"

	"github.com/Dooooug/QuimiDocs-Deploy/internal/domain"
)

// LoginRequest is the credential payload of POST /login.
// The backend expects the password under "senha".
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginResponse is the session material returned on successful login
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	User        domain.User `json:"user"`
}

// RegisterRequest is the payload of POST /register.
// Registration is admin-only in effect: the backend enforces it, the
// client merely surfaces the 403 distinctly.
type RegisterRequest struct {
	NomeDoUsuario    string      `json:"nome_do_usuario"`
	Email            string      `json:"email"`
	Senha            string      `json:"senha"`
	Nivel            domain.Role `json:"nivel"`
	CPF              string      `json:"cpf,omitempty"`
	Empresa          string      `json:"empresa,omitempty"`
	Setor            string      `json:"setor,omitempty"`
	DataDeNascimento string      `json:"data_de_nascimento,omitempty"`
	Planta           string      `json:"planta,omitempty"`
}

// RegisterResponse is the backend's registration acknowledgement
type RegisterResponse struct {
	Msg  string       `json:"msg"`
	User *domain.User `json:"user,omitempty"`
}

// Login exchanges credentials for a session.
// The token is also set on the client for subsequent requests.
func (c *Client) Login(ctx context.Context, email, senha string) (*LoginResponse, error) {
	req := LoginRequest{
		Email: email,
		Senha: senha,
	}

	resp, err := c.doRequest(ctx, "POST", "/login", req)
	if err != nil {
		return nil, err
	}

	var loginResp LoginResponse
	if err := parseResponse(resp, &loginResp); err != nil {
		return nil, err
	}

	c.SetToken(loginResp.AccessToken)

	return &loginResp, nil
}

// Register creates a new user account
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	resp, err := c.doRequest(ctx, "POST", "/register", req)
	if err != nil {
		return nil, err
	}

	var regResp RegisterResponse
	if err := parseResponse(resp, &regResp); err != nil {
		return nil, err
	}

	return &regResp, nil
}
