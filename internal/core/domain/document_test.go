package domain

import (
	"errors"
	"testing"
)

const tenMiB = 10 * 1024 * 1024

func TestCheckDocumentMeta_AcceptsAllowedTypes(t *testing.T) {
	for _, name := range []string{"policy.pdf", "policy.doc", "policy.docx", "POLICY.PDF"} {
		if err := CheckDocumentMeta(name, 1024, tenMiB); err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
		}
	}
}

func TestCheckDocumentMeta_RejectsOversize(t *testing.T) {
	if err := CheckDocumentMeta("policy.pdf", tenMiB+1, tenMiB); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("expected ErrFileTooLarge, got %v", err)
	}
	// exactly at the cap is fine
	if err := CheckDocumentMeta("policy.pdf", tenMiB, tenMiB); err != nil {
		t.Errorf("unexpected error at the cap: %v", err)
	}
}

func TestCheckDocumentMeta_RejectsUnsupportedTypes(t *testing.T) {
	for _, name := range []string{"policy.exe", "policy.txt", "policy", "policy.pdf.zip"} {
		if err := CheckDocumentMeta(name, 1024, tenMiB); !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("%s: expected ErrUnsupportedType, got %v", name, err)
		}
	}
}

func TestCheckDocumentMeta_TypeCheckedBeforeSize(t *testing.T) {
	// an oversize file of the wrong type reports the type problem
	if err := CheckDocumentMeta("huge.exe", tenMiB*2, tenMiB); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("expected ErrUnsupportedType, got %v", err)
	}
}
