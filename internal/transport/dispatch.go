package transport

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"macenroll/internal/conf"
	"macenroll/internal/domain"
	"macenroll/internal/store"
)

// UploadResult is one record's delivery outcome.
type UploadResult struct {
	RecordID     string
	FriendlyName string
	OK           bool
	Message      string
}

// Summary aggregates a whole dispatch run.
type Summary struct {
	Sent    int
	Failed  int
	Results []UploadResult
}

// String renders the user-facing summary line plus one line per failure.
func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d sent, %d failed", s.Sent, s.Failed)
	for _, res := range s.Results {
		if !res.OK {
			fmt.Fprintf(&b, "\n%s: %s", res.FriendlyName, res.Message)
		}
	}
	return b.String()
}

// Dispatcher fans payload uploads out over the uploader, one per record, and
// joins on all of them. Records whose upload succeeds are removed from the
// list; failed records stay for a later retry. Once dispatched, an upload
// runs to completion or failure.
type Dispatcher struct {
	uploader   Uploader
	list       *store.MachineList
	logger     logrus.FieldLogger
	maxRetries uint64
}

// NewDispatcher creates a dispatcher over the given uploader and record list.
func NewDispatcher(uploader Uploader, list *store.MachineList, logger logrus.FieldLogger) *Dispatcher {
	return &Dispatcher{uploader: uploader, list: list, logger: logger, maxRetries: 2}
}

// SendAll connects, uploads every record concurrently, and aggregates the
// results on the calling goroutine, which is the only place shared state is
// touched. A connect or share failure fails every record with that message
// instead of aborting; nothing is ever dropped.
func (d *Dispatcher) SendAll(ctx context.Context, host, share string, creds conf.Credentials) Summary {
	records := d.list.Records()
	if len(records) == 0 {
		return Summary{}
	}

	if err := d.uploader.Connect(ctx, host, creds); err != nil {
		return d.failAll(records, err)
	}
	defer func() {
		if err := d.uploader.Disconnect(); err != nil {
			d.logger.WithError(err).Warn("disconnect failed")
		}
	}()

	if err := d.uploader.SelectShare(share); err != nil {
		return d.failAll(records, err)
	}

	results := make(chan UploadResult, len(records))
	var wg sync.WaitGroup
	for _, rec := range records {
		wg.Add(1)
		go func(rec domain.EnrollmentRecord) {
			defer wg.Done()
			results <- d.upload(ctx, rec)
		}(rec)
	}
	wg.Wait()
	close(results)

	var summary Summary
	for res := range results {
		summary.Results = append(summary.Results, res)
		if res.OK {
			d.list.Remove(res.RecordID)
			summary.Sent++
		} else {
			summary.Failed++
			d.logger.WithField("machine", res.FriendlyName).Error(res.Message)
		}
	}
	return summary
}

func (d *Dispatcher) upload(ctx context.Context, rec domain.EnrollmentRecord) UploadResult {
	result := UploadResult{RecordID: rec.ID, FriendlyName: rec.FriendlyName}

	data, err := domain.EncodePayload(rec)
	if err != nil {
		result.Message = fmt.Sprintf("could not encode payload: %v", err)
		return result
	}

	op := func() error {
		return d.uploader.Upload(ctx, data, domain.PayloadFilename(rec))
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), d.maxRetries), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		result.Message = err.Error()
		return result
	}

	result.OK = true
	return result
}

func (d *Dispatcher) failAll(records []domain.EnrollmentRecord, err error) Summary {
	summary := Summary{Failed: len(records)}
	for _, rec := range records {
		summary.Results = append(summary.Results, UploadResult{
			RecordID:     rec.ID,
			FriendlyName: rec.FriendlyName,
			Message:      err.Error(),
		})
	}
	d.logger.WithError(err).Error("transport unavailable, all records retained")
	return summary
}
