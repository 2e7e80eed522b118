package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"eventcheckin/internal/domain"
)

type fakeEventRepo struct {
	views      map[string]*domain.EventView
	saveErr    error
	saved      []*domain.EventDraft
	lastPatch  *domain.EventPatch
	lastStatus *domain.EventStatus
	lastFilter *domain.EventFilter
	page       *domain.EventPage
	guestList  *domain.GuestList
	removed    []string
}

func (f *fakeEventRepo) Save(ctx context.Context, draft *domain.EventDraft, id string, now time.Time) (*domain.EventView, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.saved = append(f.saved, draft)
	view := &domain.EventView{
		Event: domain.Event{
			ID:            id,
			Name:          draft.Name,
			Description:   draft.Description,
			ExpectedStart: draft.ExpectedStart,
			ExpectedEnd:   draft.ExpectedEnd,
			Location:      draft.Location,
			OrganizerCPF:  draft.OrganizerCPF,
			Latitude:      draft.Latitude,
			Longitude:     draft.Longitude,
			Status:        domain.StatusPendente,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		Guests: domain.EmailSummary{Total: len(draft.GuestEmails), Emails: draft.GuestEmails},
	}
	if f.views == nil {
		f.views = map[string]*domain.EventView{}
	}
	f.views[id] = view
	return view, nil
}

func (f *fakeEventRepo) FindByID(ctx context.Context, id string) (*domain.EventView, error) {
	view, ok := f.views[id]
	if !ok {
		return nil, domain.NotFound("Evento não encontrado com o ID informado: " + id)
	}
	c := *view
	return &c, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, id string, patch *domain.EventPatch, status *domain.EventStatus) (*domain.EventView, error) {
	view, ok := f.views[id]
	if !ok {
		return nil, domain.NotFound("Evento não encontrado com o ID informado: " + id)
	}
	f.lastPatch = patch
	f.lastStatus = status
	updated := *view
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.ActualStart != nil {
		updated.ActualStart = patch.ActualStart
	}
	if patch.ActualEnd != nil {
		updated.ActualEnd = patch.ActualEnd
	}
	if status != nil {
		updated.Status = *status
	}
	f.views[id] = &updated
	return &updated, nil
}

func (f *fakeEventRepo) Remove(ctx context.Context, id string) error {
	if _, ok := f.views[id]; !ok {
		return domain.NotFound("Evento não encontrado com o ID informado: " + id)
	}
	delete(f.views, id)
	f.removed = append(f.removed, id)
	return nil
}

func (f *fakeEventRepo) Find(ctx context.Context, filter *domain.EventFilter) (*domain.EventPage, error) {
	f.lastFilter = filter
	return f.page, nil
}

func (f *fakeEventRepo) GuestListByEventName(ctx context.Context, name string) (*domain.GuestList, error) {
	if f.guestList == nil {
		return nil, domain.NotFound("Evento não encontrado")
	}
	return f.guestList, nil
}

type fakeGuestRepo struct {
	guests     []*domain.Guest
	replaceErr error
	replaced   int
}

func (f *fakeGuestRepo) GetByEventAndEmail(ctx context.Context, eventID, email string) (*domain.Guest, error) {
	for _, g := range f.guests {
		if g.EventID == eventID && g.Email == email {
			c := *g
			c.Records = append([]domain.CheckInRecord(nil), g.Records...)
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeGuestRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.Guest, error) {
	var out []*domain.Guest
	for _, g := range f.guests {
		if g.EventID == eventID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGuestRepo) ReplaceRecords(ctx context.Context, eventID, email string, records []domain.CheckInRecord) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	for _, g := range f.guests {
		if g.EventID == eventID && g.Email == email {
			g.Records = records
			f.replaced++
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeUserLookup struct {
	byCPF   map[string]*domain.User
	byEmail map[string]*domain.User
	err     error
}

func (f *fakeUserLookup) FindByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byCPF[cpf], nil
}

func (f *fakeUserLookup) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byEmail[email], nil
}

type fakeEmailService struct {
	invitations []*domain.GuestInvitationEmailData
	statuses    []*domain.StatusChangeEmailData
	reports     []*domain.EventReportEmailData
	err         error
}

func (f *fakeEmailService) SendGuestInvitation(ctx context.Context, data *domain.GuestInvitationEmailData) error {
	f.invitations = append(f.invitations, data)
	return f.err
}

func (f *fakeEmailService) SendStatusChange(ctx context.Context, data *domain.StatusChangeEmailData) error {
	f.statuses = append(f.statuses, data)
	return f.err
}

func (f *fakeEmailService) SendEventReport(ctx context.Context, data *domain.EventReportEmailData) error {
	f.reports = append(f.reports, data)
	return f.err
}

type fakeReportSink struct {
	name string
	rows [][]string
	err  error
}

func (f *fakeReportSink) Write(ctx context.Context, name string, rows [][]string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.name = name
	f.rows = rows
	return "/reports/" + name + ".xlsx", nil
}

func newTestEventService(events *fakeEventRepo, guests *fakeGuestRepo, users *fakeUserLookup, email *fakeEmailService, reports *fakeReportSink) domain.EventService {
	if users == nil {
		users = &fakeUserLookup{}
	}
	if email == nil {
		email = &fakeEmailService{}
	}
	if reports == nil {
		reports = &fakeReportSink{}
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewEventService(events, guests, users, email, reports, logger)
}
