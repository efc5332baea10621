package ampboot

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// DownloadInstaller fetches the installer payload from url into dir and
// returns the path of the downloaded artifact. The artifact keeps the
// URL's base name so diagnostics point at a recognizable file. There is no
// timeout: the download blocks until it completes or the connection drops
// (interrupting the process is the only cancellation).
func DownloadInstaller(url string, dir string, progress ProgressCallback) (string, error) {
	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %s for %s", ErrDownload, resp.Status, url)
	}

	artifact := filepath.Join(dir, path.Base(url))
	out, err := os.OpenFile(artifact, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0755)
	if err != nil {
		return "", fmt.Errorf("%w: creating %s: %v", ErrDownload, artifact, err)
	}
	defer out.Close()

	writer := io.Writer(out)
	if progress != nil {
		writer = io.MultiWriter(out, &progressWriter{
			total:    resp.ContentLength,
			progress: progress,
			message:  "Downloading miniconda installer...",
		})
	}

	if _, err := io.Copy(writer, resp.Body); err != nil {
		os.Remove(artifact)
		return "", fmt.Errorf("%w: %v", ErrDownload, err)
	}

	if progress != nil {
		progress("Miniconda installer downloaded", 100, 100)
	}
	return artifact, nil
}

// progressWriter reports bytes written through a ProgressCallback.
// total is -1 when the server did not send a Content-Length.
type progressWriter struct {
	written  int64
	total    int64
	progress ProgressCallback
	message  string
}

func (pw *progressWriter) Write(p []byte) (int, error) {
	pw.written += int64(len(p))
	pw.progress(pw.message, pw.written, pw.total)
	return len(p), nil
}
