package tui

import (
	"strings"
	"testing"

	"github.com/Dooooug/QuimiDocs-Deploy/internal/domain"
)

func TestRequired(t *testing.T) {
	validate := Required("fornecedor")

	if err := validate("Labsynth"); err != nil {
		t.Errorf("Expected no error for non-blank value, got %v", err)
	}
	if err := validate(""); err == nil {
		t.Error("Expected error for blank value")
	}
	if err := validate("   "); err == nil {
		t.Error("Expected error for whitespace-only value")
	}
}

func TestValidCAS(t *testing.T) {
	if err := ValidCAS(""); err != nil {
		t.Errorf("Expected blank CAS to be accepted, got %v", err)
	}
	if err := ValidCAS("7732-18-5"); err != nil {
		t.Errorf("Expected valid CAS to be accepted, got %v", err)
	}
	if err := ValidCAS("  67-64-1  "); err != nil {
		t.Errorf("Expected trimmed CAS to be accepted, got %v", err)
	}
	if err := ValidCAS("1234-56-7"); err == nil {
		t.Error("Expected checksum mismatch to be rejected")
	}
	if err := ValidCAS("abc-12-3"); err == nil {
		t.Error("Expected malformed CAS to be rejected")
	}
}

func TestStatusBadgeRendersStatusText(t *testing.T) {
	styles := DefaultStyles()

	for _, status := range []domain.ProductStatus{domain.StatusPending, domain.StatusApproved, domain.StatusRejected} {
		badge := styles.StatusBadge(status)
		if !strings.Contains(badge, string(status)) {
			t.Errorf("Expected badge for %s to carry the status text, got %q", status, badge)
		}
	}
}
