package api

import (
	"context"
	"net/url"

	"github.com/Dooooug/QuimiDocs-Deploy/internal/domain"
)

// UserUpdate is the editable subset of a user record.
// An empty Senha means "keep the current password".
type UserUpdate struct {
	Username         string      `json:"username,omitempty"`
	Email            string      `json:"email,omitempty"`
	Senha            string      `json:"senha,omitempty"`
	Role             domain.Role `json:"role,omitempty"`
	CPF              string      `json:"cpf,omitempty"`
	Empresa          string      `json:"empresa,omitempty"`
	Setor            string      `json:"setor,omitempty"`
	DataDeNascimento string      `json:"data_de_nascimento,omitempty"`
	Planta           string      `json:"planta,omitempty"`
}

// MessageResponse is a bare acknowledgement from the backend
type MessageResponse struct {
	Msg string `json:"msg"`
}

// GetAllUsers lists every user (admin only, enforced server-side)
func (c *Client) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	resp, err := c.doRequest(ctx, "GET", "/users", nil)
	if err != nil {
		return nil, err
	}

	var users []domain.User
	if err := parseResponse(resp, &users); err != nil {
		return nil, err
	}

	return users, nil
}

// UpdateUser updates a user record
func (c *Client) UpdateUser(ctx context.Context, id string, update UserUpdate) (*domain.User, error) {
	resp, err := c.doRequest(ctx, "PUT", "/users/"+url.PathEscape(id), update)
	if err != nil {
		return nil, err
	}

	var user domain.User
	if err := parseResponse(resp, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// DeleteUser removes a user
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, "DELETE", "/users/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}
