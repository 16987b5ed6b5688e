package transport

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"macenroll/internal/conf"
)

// LocalUploader writes payloads to a local directory. This is the test-mode
// stand-in for the network transport; host and credentials are ignored.
type LocalUploader struct {
	Logger logrus.FieldLogger
	Root   string

	dir string
}

// Connect creates the root directory if needed.
func (u *LocalUploader) Connect(ctx context.Context, host string, creds conf.Credentials) error {
	if err := os.MkdirAll(u.Root, 0755); err != nil {
		return errors.Wrapf(err, "could not create upload directory %s", u.Root)
	}
	u.dir = u.Root
	if u.Logger != nil {
		u.Logger.WithField("dir", u.Root).Info("test mode: uploads go to local directory")
	}
	return nil
}

// SelectShare scopes subsequent uploads to a subdirectory named after the
// share.
func (u *LocalUploader) SelectShare(name string) error {
	if name == "" {
		return errors.New("no share name configured")
	}
	dir := filepath.Join(u.Root, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "could not create share directory %s", dir)
	}
	u.dir = dir
	return nil
}

// Upload writes one payload file.
func (u *LocalUploader) Upload(ctx context.Context, data []byte, path string) error {
	if u.dir == "" {
		return errors.New("not connected")
	}
	target := filepath.Join(u.dir, path)
	if err := os.WriteFile(target, data, 0644); err != nil {
		return errors.Wrapf(err, "could not write %s", target)
	}
	return nil
}

// Disconnect is a no-op for the local filesystem.
func (u *LocalUploader) Disconnect() error {
	u.dir = ""
	return nil
}
