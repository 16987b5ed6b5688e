package transport

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"macenroll/internal/conf"
)

// FakeUploader is an in-memory Uploader for tests. Failures can be injected
// per path or for the whole connection.
type FakeUploader struct {
	mu sync.Mutex

	ConnectErr     error
	SelectShareErr error
	FailPaths      map[string]error

	Connected bool
	Share     string
	Uploaded  map[string][]byte
}

// NewFakeUploader creates an empty fake.
func NewFakeUploader() *FakeUploader {
	return &FakeUploader{
		FailPaths: make(map[string]error),
		Uploaded:  make(map[string][]byte),
	}
}

func (u *FakeUploader) Connect(ctx context.Context, host string, creds conf.Credentials) error {
	if u.ConnectErr != nil {
		return u.ConnectErr
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.Connected = true
	return nil
}

func (u *FakeUploader) SelectShare(name string) error {
	if u.SelectShareErr != nil {
		return u.SelectShareErr
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.Share = name
	return nil
}

func (u *FakeUploader) Upload(ctx context.Context, data []byte, path string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if !u.Connected {
		return errors.New("not connected")
	}
	if err, ok := u.FailPaths[path]; ok {
		return err
	}
	u.Uploaded[path] = data
	return nil
}

func (u *FakeUploader) Disconnect() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.Connected = false
	return nil
}
