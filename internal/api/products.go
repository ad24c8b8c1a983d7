package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"

	"github.com/Dooooug/QuimiDocs-Deploy/internal/domain"
)

// ProductResponse is the acknowledgement for create and update calls
type ProductResponse struct {
	Msg     string          `json:"msg"`
	Product *domain.Product `json:"product,omitempty"`
}

// NextCodeResponse carries the next free product code
type NextCodeResponse struct {
	NextCode string `json:"next_code"`
}

// GetProducts lists products, optionally filtered by status.
// An empty status returns everything the caller's role may see.
func (c *Client) GetProducts(ctx context.Context, status domain.ProductStatus) ([]domain.Product, error) {
	path := "/products"
	if status != "" {
		path = fmt.Sprintf("/products?status=%s", url.QueryEscape(status.String()))
	}

	resp, err := c.doRequest(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	if err := parseResponse(resp, &products); err != nil {
		return nil, err
	}

	return products, nil
}

// GetProductByID fetches a single product
func (c *Client) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	resp, err := c.doRequest(ctx, "GET", "/products/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var product domain.Product
	if err := parseResponse(resp, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

// CreateProduct registers a new product as plain JSON
func (c *Client) CreateProduct(ctx context.Context, product *domain.Product) (*ProductResponse, error) {
	resp, err := c.doRequest(ctx, "POST", "/products", product)
	if err != nil {
		return nil, err
	}

	var prodResp ProductResponse
	if err := parseResponse(resp, &prodResp); err != nil {
		return nil, err
	}

	return &prodResp, nil
}

// CreateProductWithAttachment registers a product and its FDS file in
// one multipart request: the product JSON travels in a "productData"
// form field and the file in "file".
func (c *Client) CreateProductWithAttachment(ctx context.Context, product *domain.Product, filePath string) (*ProductResponse, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open attachment: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	productJSON, err := json.Marshal(product)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal product data: %w", err)
	}
	if err := writer.WriteField("productData", string(productJSON)); err != nil {
		return nil, fmt.Errorf("failed to write product data field: %w", err)
	}

	part, err := writer.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to create file field: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("failed to read attachment: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	resp, err := c.doMultipart(ctx, "/products", &buf, writer.FormDataContentType())
	if err != nil {
		return nil, err
	}

	var prodResp ProductResponse
	if err := parseResponse(resp, &prodResp); err != nil {
		return nil, err
	}

	return &prodResp, nil
}

// UpdateProduct replaces the editable fields of a product
func (c *Client) UpdateProduct(ctx context.Context, id string, product *domain.Product) (*ProductResponse, error) {
	resp, err := c.doRequest(ctx, "PUT", "/products/"+url.PathEscape(id), product)
	if err != nil {
		return nil, err
	}

	var prodResp ProductResponse
	if err := parseResponse(resp, &prodResp); err != nil {
		return nil, err
	}

	return &prodResp, nil
}

// DeleteProduct removes a product
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, "DELETE", "/products/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}

// UpdateProductStatus moves a product through the approval workflow
func (c *Client) UpdateProductStatus(ctx context.Context, id string, status domain.ProductStatus) (*ProductResponse, error) {
	body := map[string]string{"status": status.String()}

	resp, err := c.doRequest(ctx, "PUT", "/products/"+url.PathEscape(id)+"/status", body)
	if err != nil {
		return nil, err
	}

	var prodResp ProductResponse
	if err := parseResponse(resp, &prodResp); err != nil {
		return nil, err
	}

	return &prodResp, nil
}

// GetNextProductCode fetches the code the next registration will receive
func (c *Client) GetNextProductCode(ctx context.Context) (string, error) {
	resp, err := c.doRequest(ctx, "GET", "/products/next-code", nil)
	if err != nil {
		return "", err
	}

	var codeResp NextCodeResponse
	if err := parseResponse(resp, &codeResp); err != nil {
		return "", err
	}

	return codeResp.NextCode, nil
}
