package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dooooug/QuimiDocs-Deploy/internal/api"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/domain"
)

// Attaching an FDS is a single upload request: the backend records the
// attachment location on the product itself, so no follow-up update of
// the product record may be sent.
func TestAttachFDS_SingleUploadRequest(t *testing.T) {
	var uploads, updates int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut:
			updates++
			w.Write([]byte(`{"msg":"ok"}`))
		case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/upload/"):
			uploads++
			w.Write([]byte(`{"url":"https://files.example/acetona.pdf","s3_file_key":"fds/acetona.pdf"}`))
		default:
			w.Write([]byte(`{"nome_do_produto":"Acetona","status":"pendente"}`))
		}
	}))
	t.Cleanup(srv.Close)

	a := testApp(t)
	a.client = api.NewClient(srv.URL)
	signIn(t, a, domain.RoleAdmin)

	path := filepath.Join(t.TempDir(), "Acetona.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if err := attachFDS(context.Background(), a, a.store.Current(), "p1", path); err != nil {
		t.Fatalf("attachFDS failed: %v", err)
	}
	if uploads != 1 {
		t.Errorf("Expected one upload request, got %d", uploads)
	}
	if updates != 0 {
		t.Errorf("Expected no product update request, got %d", updates)
	}
}
