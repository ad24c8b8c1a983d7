package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// UploadResponse is the attachment location after a successful upload
type UploadResponse struct {
	URL   string `json:"url"`
	S3Key string `json:"s3_file_key"`
}

// DownloadResponse carries a presigned URL, valid only briefly
type DownloadResponse struct {
	DownloadURL string `json:"download_url"`
}

// ValidateFDSFile checks an attachment before any byte leaves the
// machine: the file must exist, carry a .pdf extension, and its base
// name (lowercased, trimmed) must equal the product name.
func ValidateFDSFile(productName, filePath string) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("arquivo não encontrado: %s", filePath)
	}
	if info.IsDir() {
		return fmt.Errorf("o caminho aponta para um diretório: %s", filePath)
	}

	base := filepath.Base(filePath)
	ext := filepath.Ext(base)
	if !strings.EqualFold(ext, ".pdf") {
		return fmt.Errorf("o arquivo deve estar no formato PDF")
	}

	fileName := strings.TrimSpace(strings.ToLower(strings.TrimSuffix(base, ext)))
	wanted := strings.TrimSpace(strings.ToLower(productName))
	if fileName != wanted {
		return fmt.Errorf("o nome do arquivo deve ser exatamente igual ao nome do produto: %q", productName)
	}
	return nil
}

// UploadFDS sends the safety data sheet PDF for a product as a
// multipart "file" field. Client-side validation (PDF extension,
// file-name/product-name match) happens before this is called.
func (c *Client) UploadFDS(ctx context.Context, productID, filePath string) (*UploadResponse, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to create file field: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	resp, err := c.doMultipart(ctx, "/upload/"+url.PathEscape(productID), &buf, writer.FormDataContentType())
	if err != nil {
		return nil, err
	}

	var uploadResp UploadResponse
	if err := parseResponse(resp, &uploadResp); err != nil {
		return nil, err
	}

	return &uploadResp, nil
}

// GetDownloadURL asks the backend for a presigned URL to the product's
// FDS. The backend validates the token before issuing the link.
func (c *Client) GetDownloadURL(ctx context.Context, productID string) (string, error) {
	resp, err := c.doRequest(ctx, "GET", "/products/"+url.PathEscape(productID)+"/download", nil)
	if err != nil {
		return "", err
	}

	var dlResp DownloadResponse
	if err := parseResponse(resp, &dlResp); err != nil {
		return "", err
	}

	if dlResp.DownloadURL == "" {
		return "", fmt.Errorf("server did not return a download link")
	}

	return dlResp.DownloadURL, nil
}

// DownloadFDS fetches the presigned URL and streams its content to w.
// The presigned link itself is pre-authorized; no bearer token is sent
// to the storage host.
func (c *Client) DownloadFDS(ctx context.Context, productID string, w io.Writer) error {
	link, err := c.GetDownloadURL(ctx, productID)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("file host returned status %d", resp.StatusCode)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	return nil
}
