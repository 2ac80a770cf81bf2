package installer

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func digestOf(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func serve(t *testing.T, status int, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestInstallBinaryPlacesExecutable(t *testing.T) {
	body := []byte("#!/bin/sh\nexit 0\n")
	srv := serve(t, http.StatusOK, body)
	binDir := t.TempDir()

	if err := installBinary("opm", srv.URL+"/linux-amd64-opm", digestOf(body), binDir); err != nil {
		t.Fatalf("installBinary: %v", err)
	}

	target := filepath.Join(binDir, "opm")
	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode()&0o111 == 0 {
		t.Errorf("execute bit not set: %v", info.Mode())
	}
	data, _ := os.ReadFile(target)
	if string(data) != string(body) {
		t.Errorf("content mismatch")
	}
}

func TestInstallBinaryChecksumMismatchAbortsBeforePlacement(t *testing.T) {
	srv := serve(t, http.StatusOK, []byte("tampered"))
	binDir := t.TempDir()

	err := installBinary("opm", srv.URL+"/linux-amd64-opm", digestOf([]byte("expected")), binDir)
	if err == nil {
		t.Fatal("expected checksum error")
	}

	// Nothing may reach the bin directory, executable or otherwise.
	entries, _ := os.ReadDir(binDir)
	if len(entries) != 0 {
		t.Errorf("bin directory not empty after failed verification: %v", entries)
	}
}

func TestInstallBinaryHTTPErrorFails(t *testing.T) {
	srv := serve(t, http.StatusNotFound, []byte("not found"))
	binDir := t.TempDir()

	if err := installBinary("opm", srv.URL+"/missing", "", binDir); err == nil {
		t.Fatal("expected error for HTTP 404")
	}
	entries, _ := os.ReadDir(binDir)
	if len(entries) != 0 {
		t.Errorf("bin directory not empty after failed download: %v", entries)
	}
}

func TestInstallArchiveExtractsVerifiedMember(t *testing.T) {
	member := "golangci-lint-1.61.0-linux-amd64/golangci-lint"
	archive := makeTarGz(t, map[string]string{
		member: "binary payload",
		"golangci-lint-1.61.0-linux-amd64/README.md": "docs",
	})
	srv := serve(t, http.StatusOK, archive)
	binDir := t.TempDir()

	err := installArchive("golangci-lint", srv.URL+"/golangci-lint.tar.gz", digestOf(archive), member, binDir)
	if err != nil {
		t.Fatalf("installArchive: %v", err)
	}

	target := filepath.Join(binDir, "golangci-lint")
	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode()&0o111 == 0 {
		t.Errorf("execute bit not set: %v", info.Mode())
	}
	data, _ := os.ReadFile(target)
	if string(data) != "binary payload" {
		t.Errorf("content: got %q", data)
	}
}

func TestInstallArchiveChecksumMismatchAbortsBeforeExtraction(t *testing.T) {
	member := "golangci-lint-1.61.0-linux-amd64/golangci-lint"
	archive := makeTarGz(t, map[string]string{member: "binary payload"})
	srv := serve(t, http.StatusOK, archive)
	binDir := t.TempDir()

	err := installArchive("golangci-lint", srv.URL+"/golangci-lint.tar.gz", digestOf([]byte("other")), member, binDir)
	if err == nil {
		t.Fatal("expected checksum error")
	}
	entries, _ := os.ReadDir(binDir)
	if len(entries) != 0 {
		t.Errorf("bin directory not empty after failed verification: %v", entries)
	}
}
