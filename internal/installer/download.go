package installer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"devctl/internal/logger"
)

// downloadFile downloads the content located at the specified URL and saves it
// to the destination path. It returns an error if the download or file write
// fails.
func downloadFile(url, destPath string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to GET %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download of %s failed: HTTP status %d", url, resp.StatusCode)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", destPath, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close destination file: %v\n", cerr)
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write response to file: %w", err)
	}

	logger.Debug("[DEBUG] Downloaded %s to %s\n", url, destPath)
	return nil
}

// verifyChecksum compares the sha256 digest of the file against the expected
// hex digest and fails on any mismatch.
func verifyChecksum(filePath, expected string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return err
	}

	actual := hex.EncodeToString(h.Sum(nil))
	if actual != expected {
		return fmt.Errorf("checksum mismatch for %s: expected %s, got %s", filePath, expected, actual)
	}
	logger.Debug("[DEBUG] Checksum of %s verified\n", filePath)
	return nil
}

// installBinary downloads a raw release binary into a temporary directory,
// optionally verifies its digest, and only then places it into binDir under
// the tool's name with the execute bit set. A checksum mismatch aborts before
// anything is written to binDir.
func installBinary(tool, url, digest, binDir string) error {
	tmp, err := os.MkdirTemp("", "devctl-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)

	artifact := filepath.Join(tmp, path.Base(url))
	if err := downloadFile(url, artifact); err != nil {
		return err
	}
	if digest != "" {
		if err := verifyChecksum(artifact, digest); err != nil {
			return err
		}
	}

	target := filepath.Join(binDir, tool)
	if err := copyFile(artifact, target); err != nil {
		return err
	}
	return makeExecutable(target)
}

// installArchive downloads a release archive into a temporary directory,
// optionally verifies its digest, extracts the named member into binDir, and
// sets the execute bit on it. As with installBinary, verification happens
// before anything reaches binDir.
func installArchive(tool, url, digest, member, binDir string) error {
	tmp, err := os.MkdirTemp("", "devctl-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)

	artifact := filepath.Join(tmp, path.Base(url))
	if err := downloadFile(url, artifact); err != nil {
		return err
	}
	if digest != "" {
		if err := verifyChecksum(artifact, digest); err != nil {
			return err
		}
	}

	target, err := extractMember(artifact, member, binDir)
	if err != nil {
		return fmt.Errorf("failed to extract %s: %w", tool, err)
	}
	return makeExecutable(target)
}

// copyFile copies src to dst, truncating any existing file.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

// makeExecutable adds the execute permission to the file, keeping the rest of
// its mode bits.
func makeExecutable(filePath string) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return err
	}
	return os.Chmod(filePath, info.Mode()|0o111)
}
