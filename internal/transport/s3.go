package transport

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"macenroll/internal/conf"
)

// S3Uploader delivers payloads to an S3-compatible object store. The share
// name maps to the bucket; the host, when set, is used as a custom endpoint
// so on-prem object stores work too.
type S3Uploader struct {
	Logger logrus.FieldLogger

	bucket   string
	uploader *s3manager.Uploader
}

// Connect opens the session. Credentials fall back to the ambient AWS chain
// when the configured pair is empty.
func (u *S3Uploader) Connect(ctx context.Context, host string, creds conf.Credentials) error {
	config := aws.Config{}
	if host != "" {
		config.Endpoint = aws.String(host)
		config.S3ForcePathStyle = aws.Bool(true)
	}
	if creds.Username != "" {
		config.Credentials = credentials.NewStaticCredentials(creds.Username, creds.Password, "")
	}

	sess, err := session.NewSessionWithOptions(session.Options{
		Config:            config,
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return errors.Wrap(err, "could not open transport session")
	}

	u.uploader = s3manager.NewUploader(sess)
	return nil
}

// SelectShare sets the target bucket.
func (u *S3Uploader) SelectShare(name string) error {
	if name == "" {
		return errors.New("no share name configured")
	}
	u.bucket = name
	return nil
}

// Upload puts one payload object.
func (u *S3Uploader) Upload(ctx context.Context, data []byte, path string) error {
	if u.uploader == nil {
		return errors.New("not connected")
	}
	_, err := u.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(path),
		Body:   bytes.NewReader(data),
	})
	return errors.Wrapf(err, "could not upload %s to %s", path, u.bucket)
}

// Disconnect drops the session.
func (u *S3Uploader) Disconnect() error {
	u.uploader = nil
	u.bucket = ""
	return nil
}
