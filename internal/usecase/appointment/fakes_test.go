package appointment

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booking-core/internal/audit"
	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/domain/schedule"
	"github.com/BruksfildServices01/booking-core/internal/lock"
	"github.com/BruksfildServices01/booking-core/internal/models"
	"github.com/BruksfildServices01/booking-core/internal/timezone"
)

// ------------------------------------------------------
// directory
// ------------------------------------------------------

type memDirectory struct {
	mu        sync.Mutex
	clients   map[uuid.UUID]bool
	providers map[uuid.UUID]bool
	services  map[uuid.UUID]domain.ServiceInfo
}

func newMemDirectory() *memDirectory {
	return &memDirectory{
		clients:   map[uuid.UUID]bool{},
		providers: map[uuid.UUID]bool{},
		services:  map[uuid.UUID]domain.ServiceInfo{},
	}
}

func (d *memDirectory) ClientExists(ctx context.Context, id uuid.UUID) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.clients[id], nil
}

func (d *memDirectory) ProviderExists(ctx context.Context, id uuid.UUID) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.providers[id]
	return ok, nil
}

func (d *memDirectory) GetService(ctx context.Context, id uuid.UUID) (*domain.ServiceInfo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	svc, ok := d.services[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	svc.ProviderActive = d.providers[svc.ProviderID]
	return &svc, nil
}

func (d *memDirectory) ListProviderServices(ctx context.Context, providerID uuid.UUID) ([]domain.ServiceInfo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []domain.ServiceInfo
	for _, svc := range d.services {
		if svc.ProviderID == providerID {
			svc.ProviderActive = d.providers[providerID]
			out = append(out, svc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (d *memDirectory) DeactivateProvider(ctx context.Context, providerID uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.providers[providerID]; !ok {
		return domain.ErrProviderNotFound
	}
	d.providers[providerID] = false
	return nil
}

// ------------------------------------------------------
// store
// ------------------------------------------------------

type memStore struct {
	mu   sync.Mutex
	apps map[uuid.UUID]models.Appointment
}

func newMemStore() *memStore {
	return &memStore{apps: map[uuid.UUID]models.Appointment{}}
}

func (s *memStore) Create(ctx context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	s.apps[ap.ID] = *ap
	return nil
}

func (s *memStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ap, ok := s.apps[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	return &ap, nil
}

func (s *memStore) FindProviderAppointmentsInRange(
	ctx context.Context,
	providerID uuid.UUID,
	from, to time.Time,
	statuses []string,
) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Appointment
	for _, ap := range s.apps {
		if ap.ProviderID != providerID || ap.ScheduledStartTime.Before(from) || !ap.ScheduledStartTime.Before(to) {
			continue
		}
		if len(statuses) > 0 && !contains(statuses, ap.Status) {
			continue
		}
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledStartTime.Before(out[j].ScheduledStartTime) })
	return out, nil
}

func (s *memStore) Save(ctx context.Context, ap *models.Appointment, expected domain.Version) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.apps[ap.ID]
	if !ok {
		return domain.ErrAppointmentNotFound
	}
	if domain.VersionOf(&cur) != expected {
		return domain.ErrStaleAppointment
	}
	// unique index on payment_reference
	if ap.PaymentReference != nil {
		for id, other := range s.apps {
			if id != ap.ID && other.PaymentReference != nil && *other.PaymentReference == *ap.PaymentReference {
				return domain.ErrPaymentRefInUse
			}
		}
	}
	s.apps[ap.ID] = *ap
	return nil
}

func (s *memStore) BulkCancelFuture(ctx context.Context, providerID uuid.UUID, now time.Time, reason string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, ap := range s.apps {
		if ap.ProviderID != providerID || !ap.ScheduledStartTime.After(now) || !domain.Status(ap.Status).Blocking() {
			continue
		}
		r := reason
		ap.Status = string(domain.StatusCanceled)
		ap.CancellationReason = &r
		ap.CanceledAt = &now
		s.apps[id] = ap
		n++
	}
	return n, nil
}

// WithinProviderTx restores the previous state when fn fails.
func (s *memStore) WithinProviderTx(ctx context.Context, providerID uuid.UUID, fn func(domain.Store) error) error {
	s.mu.Lock()
	snapshot := make(map[uuid.UUID]models.Appointment, len(s.apps))
	for k, v := range s.apps {
		snapshot[k] = v
	}
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.apps = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *memStore) ListForPeriod(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]models.Appointment, error) {
	return s.FindProviderAppointmentsInRange(ctx, providerID, from, to, nil)
}

func (s *memStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.apps)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// ------------------------------------------------------
// audit
// ------------------------------------------------------

type recordingAuditor struct {
	mu     sync.Mutex
	events []audit.Event
}

func (a *recordingAuditor) Dispatch(ev audit.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, ev)
}

func (a *recordingAuditor) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.events))
	for _, ev := range a.events {
		out = append(out, ev.Action)
	}
	return out
}

// ------------------------------------------------------
// harness
// ------------------------------------------------------

var saoPaulo = timezone.Location(timezone.DefaultTimezone)

// Sunday 2030-03-10 10:00, the day before the Monday used by most tests.
var fixedNow = time.Date(2030, 3, 10, 10, 0, 0, 0, saoPaulo)

var monday = time.Date(2030, 3, 11, 0, 0, 0, 0, saoPaulo)

type harness struct {
	dir      *memDirectory
	store    *memStore
	audit    *recordingAuditor
	env      Env
	client   uuid.UUID
	provider uuid.UUID
	service  uuid.UUID

	create   *CreateAppointment
	update   *UpdateStatus
	cancel   *CancelAppointment
	complete *CompleteAppointment
}

func newHarness(t *testing.T, autoAccept bool) *harness {
	t.Helper()

	h := &harness{
		dir:      newMemDirectory(),
		store:    newMemStore(),
		audit:    &recordingAuditor{},
		env:      Env{Location: saoPaulo, Now: func() time.Time { return fixedNow }, Logger: zerolog.Nop()},
		client:   uuid.New(),
		provider: uuid.New(),
		service:  uuid.New(),
	}

	h.dir.clients[h.client] = true
	h.dir.clients[h.provider] = true
	h.dir.providers[h.provider] = true

	bs, be := "12:00", "13:00"
	weekday, err := schedule.NewRule(int(time.Monday), "08:00", "18:00", &bs, &be, 30)
	require.NoError(t, err)
	saturday, err := schedule.NewRule(int(time.Saturday), "09:00", "13:00", nil, nil, 60)
	require.NoError(t, err)

	h.dir.services[h.service] = domain.ServiceInfo{
		ID:         h.service,
		ProviderID: h.provider,
		Name:       "Corte",
		Price:      40,
		AutoAccept: autoAccept,
		Rules:      []schedule.Rule{weekday, saturday},
	}

	locker := lock.NewLocal()
	h.create = NewCreateAppointment(h.dir, h.dir, h.store, locker, h.audit, h.env)
	h.update = NewUpdateStatus(h.store, h.audit, h.env)
	h.cancel = NewCancelAppointment(h.store, h.audit, h.env)
	h.complete = NewCompleteAppointment(h.store, h.audit, h.env)
	return h
}

func at(day time.Time, hhmm string) time.Time {
	return schedule.At(day, schedule.MustParseClock(hhmm))
}

func (h *harness) input(day time.Time, from, to string) CreateAppointmentInput {
	return CreateAppointmentInput{
		ServiceID:     h.service,
		ClientID:      h.client,
		Start:         at(day, from),
		End:           at(day, to),
		Description:   "Corte degradê com acabamento na navalha",
		PaymentMethod: string(domain.MethodPix),
	}
}

func (h *harness) book(t *testing.T, from, to string) *models.Appointment {
	t.Helper()
	ap, err := h.create.Execute(context.Background(), h.input(monday, from, to))
	require.NoError(t, err)
	return ap
}
