package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/EGC-hub/Website-repo-dev/constants"
)

// MaxAttachmentSize is the upload size cap in bytes (5 MiB).
const MaxAttachmentSize = 5 * 1024 * 1024

// AllowedAttachmentTypes is the MIME allow-list for uploads: PDF, JPG, PNG,
// PPT, PPTX, TXT, XLS, XLSX, DOC, DOCX.
var AllowedAttachmentTypes = map[string]bool{
	"application/pdf":               true,
	"image/jpeg":                    true,
	"image/png":                     true,
	"application/vnd.ms-powerpoint": true,
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": true,
	"text/plain":               true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// AttachmentFilename derives the stored name for an upload from the task, the
// status being entered, and the upload time, keeping the original extension.
func AttachmentFilename(taskID uint, status constants.TaskStatus, at time.Time, original string) string {
	return fmt.Sprintf("task_%d_%s_%d%s", taskID, status, at.Unix(), filepath.Ext(original))
}

// BlobStore persists attachment blobs. The write happens before the database
// transaction opens and is never rolled back with it.
type BlobStore interface {
	Store(filename string, src io.Reader) (string, error)
}

// DiskBlobStore writes blobs under Dir, creating it on first use.
type DiskBlobStore struct {
	Dir string
}

func (s DiskBlobStore) Store(filename string, src io.Reader) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.Dir, filename)
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", err
	}
	if err := dst.Close(); err != nil {
		return "", err
	}
	return path, nil
}
