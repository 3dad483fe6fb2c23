package util

import (
	"strings"
	"testing"
)

func TestGeneratePasswordDigestDeterministic(t *testing.T) {
	a := GeneratePasswordDigest("admin123")
	b := GeneratePasswordDigest("admin123")
	if a != b {
		t.Fatalf("digest not deterministic: %s vs %s", a, b)
	}
	if !strings.HasPrefix(a, "sha256:") {
		t.Fatalf("unexpected digest format: %s", a)
	}
	if a == GeneratePasswordDigest("admin124") {
		t.Fatal("different passwords produced the same digest")
	}
}

func TestVerifyPasswordDigest(t *testing.T) {
	digest := GeneratePasswordDigest("gizli-sifre")

	tests := []struct {
		name     string
		password string
		digest   string
		want     bool
	}{
		{"correct password", "gizli-sifre", digest, true},
		{"wrong password", "yanlis", digest, false},
		{"bare hex digest accepted", "gizli-sifre", strings.TrimPrefix(digest, "sha256:"), true},
		{"empty digest rejected", "gizli-sifre", "", false},
		{"garbage digest rejected", "gizli-sifre", "sha256:zzzz", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifyPasswordDigest(tt.password, tt.digest); got != tt.want {
				t.Fatalf("VerifyPasswordDigest() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerifyPasswordDigestBcrypt(t *testing.T) {
	digest, err := GenerateBcryptDigest("admin123")
	if err != nil {
		t.Fatalf("GenerateBcryptDigest: %v", err)
	}
	if !VerifyPasswordDigest("admin123", digest) {
		t.Fatal("bcrypt digest did not verify")
	}
	if VerifyPasswordDigest("other", digest) {
		t.Fatal("bcrypt digest verified a wrong password")
	}
}
