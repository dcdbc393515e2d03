package receipt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/booking-core/internal/config"
	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/models"
)

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Receipt is the document stored for every paid appointment.
type Receipt struct {
	AppointmentID    uuid.UUID  `json:"appointment_id"`
	ServiceID        uuid.UUID  `json:"service_id"`
	ProviderID       uuid.UUID  `json:"provider_id"`
	ClientID         uuid.UUID  `json:"client_id"`
	ScheduledStart   time.Time  `json:"scheduled_start_time"`
	ScheduledEnd     time.Time  `json:"scheduled_end_time"`
	Price            float64    `json:"price"`
	PaymentMethod    string     `json:"payment_method"`
	PaymentReference *string    `json:"payment_reference,omitempty"`
	PaidAt           *time.Time `json:"paid_at"`
}

type S3Archiver struct {
	client objectPutter
	bucket string
}

// NewS3Archiver builds a client from static credentials. A custom endpoint
// (MinIO, LocalStack) switches to path style addressing.
func NewS3Archiver(cfg *config.Config) *S3Archiver {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKeyID,
			cfg.S3SecretAccessKey,
			"",
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &S3Archiver{
		client: s3.New(opts),
		bucket: cfg.ReceiptsBucket,
	}
}

func Key(id uuid.UUID) string {
	return "receipts/" + id.String() + ".json"
}

func (a *S3Archiver) Archive(ctx context.Context, ap *models.Appointment) (string, error) {
	body, err := json.Marshal(Receipt{
		AppointmentID:    ap.ID,
		ServiceID:        ap.ServiceID,
		ProviderID:       ap.ProviderID,
		ClientID:         ap.ClientID,
		ScheduledStart:   ap.ScheduledStartTime.UTC(),
		ScheduledEnd:     ap.ScheduledEndTime.UTC(),
		Price:            ap.Price,
		PaymentMethod:    ap.PaymentMethod,
		PaymentReference: ap.PaymentReference,
		PaidAt:           ap.PaidAt,
	})
	if err != nil {
		return "", err
	}

	key := Key(ap.ID)
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("put receipt %s: %w", key, err)
	}

	return key, nil
}

var _ domain.ReceiptArchiver = (*S3Archiver)(nil)
