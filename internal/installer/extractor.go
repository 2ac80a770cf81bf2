package installer

import (
	"archive/tar"    // For reading .tar archives
	"archive/zip"    // For reading .zip archives
	"compress/bzip2" // For reading .bz2 compressed data
	"compress/gzip"  // For reading .gz compressed data
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip" // For reading .7z archives
	"github.com/xi2/xz"          // For reading .xz compressed data

	"devctl/internal/logger"
)

// extractMember extracts the archive entry named member into destDir and
// returns the path of the extracted file. The member is addressed by its full
// path inside the archive (for example
// "golangci-lint-1.61.0-linux-amd64/golangci-lint") but lands in destDir under
// its base name. The archive format is chosen by filename suffix.
func extractMember(src, member, destDir string) (string, error) {
	switch {
	case strings.HasSuffix(src, ".zip"):
		logger.Debug("[DEBUG] Archive type is zip\n")
		return extractZipMember(src, member, destDir)
	case strings.HasSuffix(src, ".7z"):
		logger.Debug("[DEBUG] Archive type is 7z\n")
		return extract7zMember(src, member, destDir)
	case strings.HasSuffix(src, ".tar"), strings.HasSuffix(src, ".tar.gz"), strings.HasSuffix(src, ".tgz"),
		strings.HasSuffix(src, ".tar.bz2"), strings.HasSuffix(src, ".tar.xz"):
		logger.Debug("[DEBUG] Archive type is tar\n")
		return extractTarMember(src, member, destDir)
	default:
		return "", fmt.Errorf("unsupported archive format: %s", src)
	}
}

// extractTarMember handles tar and its compressed variants.
func extractTarMember(src, member, destDir string) (string, error) {
	f, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var reader io.Reader = f
	switch {
	case strings.HasSuffix(src, ".tar.gz"), strings.HasSuffix(src, ".tgz"):
		gr, err := gzip.NewReader(f)
		if err != nil {
			return "", err
		}
		defer gr.Close()
		reader = gr
	case strings.HasSuffix(src, ".tar.bz2"):
		reader = bzip2.NewReader(f)
	case strings.HasSuffix(src, ".tar.xz"):
		xzr, err := xz.NewReader(f, 0)
		if err != nil {
			return "", err
		}
		reader = xzr
	}

	tr := tar.NewReader(reader)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if hdr.Typeflag != tar.TypeReg || !memberMatches(hdr.Name, member) {
			continue
		}
		return writeMember(tr, member, destDir)
	}
	return "", fmt.Errorf("member %s not found in %s", member, src)
}

// extractZipMember extracts a single member from a .zip archive.
func extractZipMember(src, member, destDir string) (string, error) {
	r, err := zip.OpenReader(src)
	if err != nil {
		return "", err
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !memberMatches(f.Name, member) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		target, err := writeMember(rc, member, destDir)
		rc.Close()
		return target, err
	}
	return "", fmt.Errorf("member %s not found in %s", member, src)
}

// extract7zMember extracts a single member from a .7z archive using the
// sevenzip library.
func extract7zMember(src, member, destDir string) (string, error) {
	r, err := sevenzip.OpenReader(src)
	if err != nil {
		return "", fmt.Errorf("failed to open 7z archive: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !memberMatches(f.Name, member) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		target, err := writeMember(rc, member, destDir)
		rc.Close()
		return target, err
	}
	return "", fmt.Errorf("member %s not found in %s", member, src)
}

// memberMatches compares an archive entry name against the wanted member,
// tolerating "./" prefixes and platform separators in the entry name.
func memberMatches(name, member string) bool {
	name = path.Clean(strings.ReplaceAll(name, "\\", "/"))
	return name == path.Clean(member)
}

// writeMember copies the member's contents into destDir under its base name.
func writeMember(r io.Reader, member, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", err
	}
	target := filepath.Join(destDir, path.Base(member))
	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", err
	}
	logger.Debug("[DEBUG] Extracted %s to %s\n", member, target)
	return target, nil
}
