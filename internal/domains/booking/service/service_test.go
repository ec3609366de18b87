package service_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodge/config"
	"lodge/helper"
	"lodge/infras/sqlite"
	bookingDto "lodge/internal/domains/booking/model/dto"
	bookingRepository "lodge/internal/domains/booking/repository"
	"lodge/internal/domains/booking/service"
	guestDto "lodge/internal/domains/guest/model/dto"
	guestRepository "lodge/internal/domains/guest/repository"
	guestService "lodge/internal/domains/guest/service"
	roomDto "lodge/internal/domains/room/model/dto"
	roomRepository "lodge/internal/domains/room/repository"
	roomService "lodge/internal/domains/room/service"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
)

type bookingFixture struct {
	conn    *sqlite.Connection
	service service.Booking
	guests  guestService.Guest
	rooms   roomService.Room
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.DB.SQLite.Path = filepath.Join(t.TempDir(), "lodge_test.db")
	cfg.DB.SQLite.MigrationTable = "schema_migrations"
	cfg.DB.SQLite.BusyTimeoutMS = 5000

	require.NoError(t, helper.Up(cfg))

	conn, err := sqlite.New(cfg)
	require.NoError(t, err)

	t.Cleanup(func() { conn.Close() })

	guestRepo := guestRepository.New(conn)
	roomRepo := roomRepository.New(conn)
	bookingRepo := bookingRepository.New(conn)

	return &bookingFixture{
		conn:    conn,
		service: service.New(bookingRepo, guestRepo, roomRepo, conn),
		guests:  guestService.New(guestRepo),
		rooms:   roomService.New(roomRepo),
	}
}

func (f *bookingFixture) seedGuest(t *testing.T) string {
	t.Helper()

	guest, err := f.guests.Create(context.Background(), guestDto.CreateGuestRequest{Name: "Ada Lovelace"})
	require.NoError(t, err)

	return guest.ID
}

func (f *bookingFixture) seedRoom(t *testing.T, number string, rate float64) string {
	t.Helper()

	room, err := f.rooms.Create(context.Background(), roomDto.CreateRoomRequest{
		RoomNumber: number,
		RoomType:   "deluxe",
		Rate:       rate,
	})
	require.NoError(t, err)

	return room.ID
}

func TestBookingService_Create(t *testing.T) {
	fixture := newBookingFixture(t)
	ctx := context.Background()

	guestID := fixture.seedGuest(t)
	roomID := fixture.seedRoom(t, "101", 350)

	res, err := fixture.service.Create(ctx, bookingDto.CreateBookingRequest{
		GuestID:  guestID,
		RoomID:   roomID,
		CheckIn:  "2024-06-01",
		CheckOut: "2024-06-05",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, 4, res.Nights)
	assert.InDelta(t, 1400.0, res.RoomTotal, 0.001)
	assert.Equal(t, "active", res.Status)

	room, err := fixture.rooms.Get(ctx, roomID)
	require.NoError(t, err)
	assert.Equal(t, "occupied", room.Status)
}

func TestBookingService_Create_Failures(t *testing.T) {
	fixture := newBookingFixture(t)
	ctx := context.Background()

	guestID := fixture.seedGuest(t)
	roomID := fixture.seedRoom(t, "101", 350)

	_, err := fixture.service.Create(ctx, bookingDto.CreateBookingRequest{
		GuestID:  guestID,
		RoomID:   roomID,
		CheckIn:  "2024-06-01",
		CheckOut: "2024-06-05",
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		req      bookingDto.CreateBookingRequest
		wantKind failure.Kind
	}{
		{
			name: "unknown guest",
			req: bookingDto.CreateBookingRequest{
				GuestID:  "no-such-guest",
				RoomID:   roomID,
				CheckIn:  "2024-07-01",
				CheckOut: "2024-07-02",
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "unknown room",
			req: bookingDto.CreateBookingRequest{
				GuestID:  guestID,
				RoomID:   "no-such-room",
				CheckIn:  "2024-07-01",
				CheckOut: "2024-07-02",
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "check-out before check-in",
			req: bookingDto.CreateBookingRequest{
				GuestID:  guestID,
				RoomID:   roomID,
				CheckIn:  "2024-07-05",
				CheckOut: "2024-07-01",
			},
			wantKind: failure.KindValidation,
		},
		{
			name: "zero-night stay",
			req: bookingDto.CreateBookingRequest{
				GuestID:  guestID,
				RoomID:   roomID,
				CheckIn:  "2024-07-01",
				CheckOut: "2024-07-01",
			},
			wantKind: failure.KindValidation,
		},
		{
			name: "malformed date",
			req: bookingDto.CreateBookingRequest{
				GuestID:  guestID,
				RoomID:   roomID,
				CheckIn:  "01/06/2024",
				CheckOut: "2024-07-02",
			},
			wantKind: failure.KindValidation,
		},
		{
			name: "overlapping range",
			req: bookingDto.CreateBookingRequest{
				GuestID:  guestID,
				RoomID:   roomID,
				CheckIn:  "2024-06-03",
				CheckOut: "2024-06-06",
			},
			wantKind: failure.KindConflict,
		},
		{
			name: "range fully containing the existing stay",
			req: bookingDto.CreateBookingRequest{
				GuestID:  guestID,
				RoomID:   roomID,
				CheckIn:  "2024-05-30",
				CheckOut: "2024-06-10",
			},
			wantKind: failure.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fixture.service.Create(ctx, tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, failure.GetKind(err))
		})
	}
}

func TestBookingService_Create_BackToBackStays(t *testing.T) {
	fixture := newBookingFixture(t)
	ctx := context.Background()

	guestID := fixture.seedGuest(t)
	roomID := fixture.seedRoom(t, "102", 200)

	_, err := fixture.service.Create(ctx, bookingDto.CreateBookingRequest{
		GuestID:  guestID,
		RoomID:   roomID,
		CheckIn:  "2024-06-01",
		CheckOut: "2024-06-05",
	})
	require.NoError(t, err)

	// Check-in on the previous check-out day must not conflict: the
	// range is half-open and the check-out day is not occupied.
	_, err = fixture.service.Create(ctx, bookingDto.CreateBookingRequest{
		GuestID:  guestID,
		RoomID:   roomID,
		CheckIn:  "2024-06-05",
		CheckOut: "2024-06-08",
	})
	assert.NoError(t, err)
}

func TestBookingService_Complete(t *testing.T) {
	fixture := newBookingFixture(t)
	ctx := context.Background()

	guestID := fixture.seedGuest(t)
	roomID := fixture.seedRoom(t, "103", 180)

	created, err := fixture.service.Create(ctx, bookingDto.CreateBookingRequest{
		GuestID:  guestID,
		RoomID:   roomID,
		CheckIn:  "2024-06-01",
		CheckOut: "2024-06-03",
	})
	require.NoError(t, err)

	res, changed, err := fixture.service.Complete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "completed", res.Status)

	room, err := fixture.rooms.Get(ctx, roomID)
	require.NoError(t, err)
	assert.Equal(t, "available", room.Status)

	_, changed, err = fixture.service.Complete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, changed)

	_, _, err = fixture.service.Cancel(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, failure.KindConflict, failure.GetKind(err))
}

func TestBookingService_Cancel_FreesTheRange(t *testing.T) {
	fixture := newBookingFixture(t)
	ctx := context.Background()

	guestID := fixture.seedGuest(t)
	roomID := fixture.seedRoom(t, "104", 220)

	created, err := fixture.service.Create(ctx, bookingDto.CreateBookingRequest{
		GuestID:  guestID,
		RoomID:   roomID,
		CheckIn:  "2024-06-01",
		CheckOut: "2024-06-05",
	})
	require.NoError(t, err)

	_, changed, err := fixture.service.Cancel(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, changed)

	// The cancelled booking no longer blocks the range.
	_, err = fixture.service.Create(ctx, bookingDto.CreateBookingRequest{
		GuestID:  guestID,
		RoomID:   roomID,
		CheckIn:  "2024-06-02",
		CheckOut: "2024-06-04",
	})
	assert.NoError(t, err)

	_, _, err = fixture.service.Complete(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, failure.KindConflict, failure.GetKind(err))
}

func TestBookingService_GetAll_JoinsNames(t *testing.T) {
	fixture := newBookingFixture(t)
	ctx := context.Background()

	guestID := fixture.seedGuest(t)
	roomID := fixture.seedRoom(t, "105", 150)

	_, err := fixture.service.Create(ctx, bookingDto.CreateBookingRequest{
		GuestID:  guestID,
		RoomID:   roomID,
		CheckIn:  "2024-06-01",
		CheckOut: "2024-06-02",
	})
	require.NoError(t, err)

	params := gDto.QueryParams{SortBy: "bookings.check_in", SortDir: gDto.SortDirAsc}

	res, err := fixture.service.GetAll(ctx, params, gDto.FilterGroup{})
	require.NoError(t, err)
	require.Len(t, res.Bookings, 1)

	assert.Equal(t, "Ada Lovelace", res.Bookings[0].GuestName)
	assert.Equal(t, "105", res.Bookings[0].RoomNumber)
}
