package receipt

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booking-core/internal/config"
	"github.com/BruksfildServices01/booking-core/internal/models"
)

type recordingPutter struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (p *recordingPutter) PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.in = in
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	p.body = body
	return &s3.PutObjectOutput{}, nil
}

func TestS3Archiver_Archive(t *testing.T) {
	putter := &recordingPutter{}
	a := &S3Archiver{client: putter, bucket: "recibos"}

	paidAt := time.Date(2030, 3, 11, 13, 0, 0, 0, time.UTC)
	ref := "1001"
	ap := &models.Appointment{
		ID:                 uuid.New(),
		ProviderID:         uuid.New(),
		ClientID:           uuid.New(),
		ScheduledStartTime: time.Date(2030, 3, 11, 12, 0, 0, 0, time.UTC),
		ScheduledEndTime:   time.Date(2030, 3, 11, 12, 30, 0, 0, time.UTC),
		Price:              40,
		PaymentMethod:      "PIX",
		PaymentReference:   &ref,
		PaidAt:             &paidAt,
	}

	key, err := a.Archive(context.Background(), ap)
	require.NoError(t, err)
	assert.Equal(t, Key(ap.ID), key)
	assert.Equal(t, "recibos", aws.ToString(putter.in.Bucket))
	assert.Equal(t, key, aws.ToString(putter.in.Key))
	assert.Equal(t, "application/json", aws.ToString(putter.in.ContentType))

	var got Receipt
	require.NoError(t, json.Unmarshal(putter.body, &got))
	assert.Equal(t, ap.ID, got.AppointmentID)
	assert.Equal(t, 40.0, got.Price)
	require.NotNil(t, got.PaymentReference)
	assert.Equal(t, ref, *got.PaymentReference)
}

func TestS3Archiver_PutFailure(t *testing.T) {
	boom := errors.New("access denied")
	a := &S3Archiver{client: &recordingPutter{err: boom}, bucket: "recibos"}

	_, err := a.Archive(context.Background(), &models.Appointment{ID: uuid.New()})
	assert.ErrorIs(t, err, boom)
}

func TestNewS3Archiver(t *testing.T) {
	a := NewS3Archiver(&config.Config{
		ReceiptsBucket: "recibos",
		S3Region:       "sa-east-1",
		S3Endpoint:     "http://localhost:9000",
	})
	assert.Equal(t, "recibos", a.bucket)
	assert.NotNil(t, a.client)
}
