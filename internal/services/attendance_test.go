package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventcheckin/internal/domain"
)

func ptrTime(t time.Time) *time.Time { return &t }

func ptrFloat(f float64) *float64 { return &f }

func finishedEvent(id string, start, end time.Time) *domain.EventView {
	return &domain.EventView{
		Event: domain.Event{
			ID:          id,
			Name:        "Meetup",
			Status:      domain.StatusFinalizado,
			ActualStart: ptrTime(start),
			ActualEnd:   ptrTime(end),
		},
	}
}

func TestEventService_CheckIn(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Hour)

	t.Run("missing event id", func(t *testing.T) {
		svc := newTestEventService(&fakeEventRepo{}, &fakeGuestRepo{}, nil, nil, nil)
		_, err := svc.CheckIn(ctx, "", "a@b.com", nil, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		assert.Equal(t, "Informe o ID do evento para realizar o check-in", err.Error())
	})

	t.Run("missing guest email", func(t *testing.T) {
		svc := newTestEventService(&fakeEventRepo{}, &fakeGuestRepo{}, nil, nil, nil)
		_, err := svc.CheckIn(ctx, "ev-1", "", nil, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	})

	t.Run("event not found", func(t *testing.T) {
		svc := newTestEventService(&fakeEventRepo{}, &fakeGuestRepo{}, nil, nil, nil)
		_, err := svc.CheckIn(ctx, "ev-missing", "a@b.com", nil, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("guest not invited", func(t *testing.T) {
		events := &fakeEventRepo{views: map[string]*domain.EventView{
			"ev-1": {Event: domain.Event{ID: "ev-1", Status: domain.StatusEmAndamento}},
		}}
		svc := newTestEventService(events, &fakeGuestRepo{}, nil, nil, nil)
		_, err := svc.CheckIn(ctx, "ev-1", "stranger@b.com", nil, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Equal(t, "Convidado não encontrado nesse evento para realizar o check-in", err.Error())
	})

	t.Run("open record rejects a second check-in", func(t *testing.T) {
		events := &fakeEventRepo{views: map[string]*domain.EventView{
			"ev-1": {Event: domain.Event{ID: "ev-1", Status: domain.StatusEmAndamento}},
		}}
		guests := &fakeGuestRepo{guests: []*domain.Guest{{
			EventID: "ev-1",
			Email:   "a@b.com",
			Records: []domain.CheckInRecord{{ID: "rec-1", CheckIn: ptrTime(start)}},
		}}}
		svc := newTestEventService(events, guests, nil, nil, nil)
		_, err := svc.CheckIn(ctx, "ev-1", "a@b.com", nil, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrConflict))
		assert.Equal(t, "Check-in já realizado para esse convidado", err.Error())
		assert.Zero(t, guests.replaced)
	})

	t.Run("direct check-in honors the supplied timestamp", func(t *testing.T) {
		events := &fakeEventRepo{views: map[string]*domain.EventView{
			"ev-1": {Event: domain.Event{ID: "ev-1", Status: domain.StatusEmAndamento}},
		}}
		guests := &fakeGuestRepo{guests: []*domain.Guest{{EventID: "ev-1", Email: "a@b.com"}}}
		svc := newTestEventService(events, guests, nil, nil, nil)

		at := start.Add(30 * time.Minute)
		out, err := svc.CheckIn(ctx, "ev-1", "a@b.com", &at, nil)
		require.NoError(t, err)
		require.Len(t, out.Records, 1)
		assert.NotEmpty(t, out.Records[0].ID)
		assert.True(t, out.Records[0].CheckIn.Equal(at))
		assert.Nil(t, out.Records[0].CheckOut)
		assert.Equal(t, 1, guests.replaced)
	})

	t.Run("direct check-in defaults to now", func(t *testing.T) {
		events := &fakeEventRepo{views: map[string]*domain.EventView{
			"ev-1": {Event: domain.Event{ID: "ev-1", Status: domain.StatusEmAndamento}},
		}}
		guests := &fakeGuestRepo{guests: []*domain.Guest{{EventID: "ev-1", Email: "a@b.com"}}}
		svc := newTestEventService(events, guests, nil, nil, nil)

		before := time.Now()
		out, err := svc.CheckIn(ctx, "ev-1", "a@b.com", nil, nil)
		require.NoError(t, err)
		require.Len(t, out.Records, 1)
		assert.False(t, out.Records[0].CheckIn.Before(before))
		assert.False(t, out.Records[0].CheckIn.After(time.Now()))
	})

	t.Run("percentage out of range", func(t *testing.T) {
		events := &fakeEventRepo{views: map[string]*domain.EventView{"ev-1": finishedEvent("ev-1", start, end)}}
		guests := &fakeGuestRepo{guests: []*domain.Guest{{EventID: "ev-1", Email: "a@b.com"}}}
		svc := newTestEventService(events, guests, nil, nil, nil)

		for _, percent := range []float64{0, -0.1, 1.01} {
			_, err := svc.CheckIn(ctx, "ev-1", "a@b.com", nil, ptrFloat(percent))
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
			assert.Equal(t, "Porcentagem de presença deve ser maior que 0 e no máximo 1", err.Error())
		}
	})

	t.Run("percentage requires a finished event", func(t *testing.T) {
		events := &fakeEventRepo{views: map[string]*domain.EventView{
			"ev-1": {Event: domain.Event{ID: "ev-1", Status: domain.StatusEmAndamento, ActualStart: ptrTime(start)}},
		}}
		guests := &fakeGuestRepo{guests: []*domain.Guest{{EventID: "ev-1", Email: "a@b.com"}}}
		svc := newTestEventService(events, guests, nil, nil, nil)

		_, err := svc.CheckIn(ctx, "ev-1", "a@b.com", nil, ptrFloat(0.5))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Equal(t, "Evento não encontrado, ou não está finalizado", err.Error())
	})

	t.Run("percentage synthesizes a proportional closed record", func(t *testing.T) {
		events := &fakeEventRepo{views: map[string]*domain.EventView{"ev-1": finishedEvent("ev-1", start, end)}}
		guests := &fakeGuestRepo{guests: []*domain.Guest{{EventID: "ev-1", Email: "a@b.com"}}}
		svc := newTestEventService(events, guests, nil, nil, nil)

		out, err := svc.CheckIn(ctx, "ev-1", "a@b.com", nil, ptrFloat(0.5))
		require.NoError(t, err)
		require.Len(t, out.Records, 1)
		rec := out.Records[0]
		require.NotNil(t, rec.CheckIn)
		require.NotNil(t, rec.CheckOut)
		assert.True(t, rec.CheckIn.Equal(start))
		assert.True(t, rec.CheckOut.Equal(start.Add(2*time.Hour)), "half of a 4h event")
	})

	t.Run("full percentage covers the whole event", func(t *testing.T) {
		events := &fakeEventRepo{views: map[string]*domain.EventView{"ev-1": finishedEvent("ev-1", start, end)}}
		guests := &fakeGuestRepo{guests: []*domain.Guest{{EventID: "ev-1", Email: "a@b.com"}}}
		svc := newTestEventService(events, guests, nil, nil, nil)

		out, err := svc.CheckIn(ctx, "ev-1", "a@b.com", nil, ptrFloat(1))
		require.NoError(t, err)
		require.Len(t, out.Records, 1)
		assert.True(t, out.Records[0].CheckOut.Equal(end))
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		events := &fakeEventRepo{views: map[string]*domain.EventView{
			"ev-1": {Event: domain.Event{ID: "ev-1", Status: domain.StatusEmAndamento}},
		}}
		guests := &fakeGuestRepo{
			guests:     []*domain.Guest{{EventID: "ev-1", Email: "a@b.com"}},
			replaceErr: errors.New("connection reset"),
		}
		svc := newTestEventService(events, guests, nil, nil, nil)
		_, err := svc.CheckIn(ctx, "ev-1", "a@b.com", nil, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
	})
}

func TestEventService_CheckOut(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	events := func() *fakeEventRepo {
		return &fakeEventRepo{views: map[string]*domain.EventView{
			"ev-1": {Event: domain.Event{ID: "ev-1", Status: domain.StatusEmAndamento}},
		}}
	}

	t.Run("no check-in yet", func(t *testing.T) {
		guests := &fakeGuestRepo{guests: []*domain.Guest{{EventID: "ev-1", Email: "a@b.com"}}}
		svc := newTestEventService(events(), guests, nil, nil, nil)
		_, err := svc.CheckOut(ctx, "ev-1", "a@b.com", nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrConflict))
		assert.Equal(t, "Check-in não realizado para esse convidado", err.Error())
	})

	t.Run("already checked out", func(t *testing.T) {
		guests := &fakeGuestRepo{guests: []*domain.Guest{{
			EventID: "ev-1",
			Email:   "a@b.com",
			Records: []domain.CheckInRecord{{ID: "rec-1", CheckIn: ptrTime(start), CheckOut: ptrTime(start.Add(time.Hour))}},
		}}}
		svc := newTestEventService(events(), guests, nil, nil, nil)
		_, err := svc.CheckOut(ctx, "ev-1", "a@b.com", nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrConflict))
		assert.Equal(t, "Check-out já realizado para esse convidado", err.Error())
	})

	t.Run("closes the open record at the supplied timestamp", func(t *testing.T) {
		guests := &fakeGuestRepo{guests: []*domain.Guest{{
			EventID: "ev-1",
			Email:   "a@b.com",
			Records: []domain.CheckInRecord{
				{ID: "rec-1", CheckIn: ptrTime(start), CheckOut: ptrTime(start.Add(time.Hour))},
				{ID: "rec-2", CheckIn: ptrTime(start.Add(2 * time.Hour))},
			},
		}}}
		svc := newTestEventService(events(), guests, nil, nil, nil)

		at := start.Add(3 * time.Hour)
		out, err := svc.CheckOut(ctx, "ev-1", "a@b.com", &at)
		require.NoError(t, err)
		require.Len(t, out.Records, 2)
		require.NotNil(t, out.Records[1].CheckOut)
		assert.True(t, out.Records[1].CheckOut.Equal(at))
		assert.Equal(t, 1, guests.replaced)
	})

	t.Run("guest not invited", func(t *testing.T) {
		svc := newTestEventService(events(), &fakeGuestRepo{}, nil, nil, nil)
		_, err := svc.CheckOut(ctx, "ev-1", "stranger@b.com", nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Equal(t, "Convidado não encontrado nesse evento para realizar o check-out", err.Error())
	})
}

func TestEventService_GetCheckInRecords(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("guest not found", func(t *testing.T) {
		svc := newTestEventService(&fakeEventRepo{}, &fakeGuestRepo{}, nil, nil, nil)
		_, err := svc.GetCheckInRecords(ctx, "ev-1", "a@b.com")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Equal(t, "Convidado não encontrado nesse evento", err.Error())
	})

	t.Run("returns the ordered record list", func(t *testing.T) {
		guests := &fakeGuestRepo{guests: []*domain.Guest{{
			EventID: "ev-1",
			Email:   "a@b.com",
			Records: []domain.CheckInRecord{
				{ID: "rec-1", CheckIn: ptrTime(start), CheckOut: ptrTime(start.Add(time.Hour))},
				{ID: "rec-2", CheckIn: ptrTime(start.Add(2 * time.Hour))},
			},
		}}}
		svc := newTestEventService(&fakeEventRepo{}, guests, nil, nil, nil)

		out, err := svc.GetCheckInRecords(ctx, "ev-1", "a@b.com")
		require.NoError(t, err)
		require.Len(t, out.Records, 2)
		assert.Equal(t, "rec-1", out.Records[0].ID)
		assert.Equal(t, "rec-2", out.Records[1].ID)
	})
}

// Alternating check-in/check-out cycles must always leave at most one open
// record, and closing must always target the open one.
func TestAttendanceRecordCycles(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	var records []domain.CheckInRecord
	var err error

	for i := 0; i < 3; i++ {
		in := start.Add(time.Duration(2*i) * time.Hour)
		records, err = appendRecord(records, in, nil)
		require.NoError(t, err)

		_, err = appendRecord(records, in.Add(time.Minute), nil)
		require.Error(t, err, "second open check-in must be rejected")

		open := findOpenRecord(records)
		require.NotNil(t, open)
		records, err = closeRecord(records, open.ID, in.Add(time.Hour))
		require.NoError(t, err)
		assert.Nil(t, findOpenRecord(records))
	}

	require.Len(t, records, 3)
	for _, r := range records {
		assert.True(t, r.Closed())
	}

	_, err = closeRecord(records, "rec-missing", start)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
