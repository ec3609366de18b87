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
	bookingService "lodge/internal/domains/booking/service"
	catalogDto "lodge/internal/domains/catalog/model/dto"
	catalogRepository "lodge/internal/domains/catalog/repository"
	catalogService "lodge/internal/domains/catalog/service"
	guestDto "lodge/internal/domains/guest/model/dto"
	guestRepository "lodge/internal/domains/guest/repository"
	guestService "lodge/internal/domains/guest/service"
	"lodge/internal/domains/order/model/dto"
	orderRepository "lodge/internal/domains/order/repository"
	"lodge/internal/domains/order/service"
	roomDto "lodge/internal/domains/room/model/dto"
	roomRepository "lodge/internal/domains/room/repository"
	roomService "lodge/internal/domains/room/service"
	"lodge/shared/failure"
)

type orderFixture struct {
	service  service.Order
	bookings bookingService.Booking
	catalog  catalogService.Catalog

	bookingID string
	serviceID string
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.DB.SQLite.Path = filepath.Join(t.TempDir(), "lodge_test.db")
	cfg.DB.SQLite.MigrationTable = "schema_migrations"
	cfg.DB.SQLite.BusyTimeoutMS = 5000

	require.NoError(t, helper.Up(cfg))

	conn, err := sqlite.New(cfg)
	require.NoError(t, err)

	t.Cleanup(func() { conn.Close() })

	ctx := context.Background()

	guestRepo := guestRepository.New(conn)
	roomRepo := roomRepository.New(conn)
	bookingRepo := bookingRepository.New(conn)
	catalogRepo := catalogRepository.New(conn)
	orderRepo := orderRepository.New(conn)

	guests := guestService.New(guestRepo)
	rooms := roomService.New(roomRepo)
	bookings := bookingService.New(bookingRepo, guestRepo, roomRepo, conn)
	catalog := catalogService.New(catalogRepo)

	guest, err := guests.Create(ctx, guestDto.CreateGuestRequest{Name: "Ada Lovelace"})
	require.NoError(t, err)

	room, err := rooms.Create(ctx, roomDto.CreateRoomRequest{RoomNumber: "101", RoomType: "deluxe", Rate: 350})
	require.NoError(t, err)

	booking, err := bookings.Create(ctx, bookingDto.CreateBookingRequest{
		GuestID:  guest.ID,
		RoomID:   room.ID,
		CheckIn:  "2024-06-01",
		CheckOut: "2024-06-05",
	})
	require.NoError(t, err)

	laundry, err := catalog.Create(ctx, catalogDto.CreateServiceRequest{Name: "Laundry", Price: 15, Category: "housekeeping"})
	require.NoError(t, err)

	return &orderFixture{
		service:   service.New(orderRepo, bookingRepo, catalogRepo),
		bookings:  bookings,
		catalog:   catalog,
		bookingID: booking.ID,
		serviceID: laundry.ID,
	}
}

func TestOrderService_Create_CapturesPrice(t *testing.T) {
	fixture := newOrderFixture(t)
	ctx := context.Background()

	res, err := fixture.service.Create(ctx, dto.CreateOrderRequest{
		BookingID: fixture.bookingID,
		ServiceID: fixture.serviceID,
		Quantity:  3,
	})
	require.NoError(t, err)

	assert.Equal(t, "Laundry", res.ServiceName)
	assert.InDelta(t, 15.0, res.UnitPrice, 0.001)
	assert.InDelta(t, 45.0, res.TotalPrice, 0.001)
}

func TestOrderService_Create_Failures(t *testing.T) {
	fixture := newOrderFixture(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		req      dto.CreateOrderRequest
		wantKind failure.Kind
	}{
		{
			name: "unknown booking",
			req: dto.CreateOrderRequest{
				BookingID: "no-such-booking",
				ServiceID: fixture.serviceID,
				Quantity:  1,
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "unknown service",
			req: dto.CreateOrderRequest{
				BookingID: fixture.bookingID,
				ServiceID: "no-such-service",
				Quantity:  1,
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "zero quantity",
			req: dto.CreateOrderRequest{
				BookingID: fixture.bookingID,
				ServiceID: fixture.serviceID,
				Quantity:  0,
			},
			wantKind: failure.KindValidation,
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

func TestOrderService_Create_InactiveBooking(t *testing.T) {
	fixture := newOrderFixture(t)
	ctx := context.Background()

	_, _, err := fixture.bookings.Complete(ctx, fixture.bookingID)
	require.NoError(t, err)

	_, err = fixture.service.Create(ctx, dto.CreateOrderRequest{
		BookingID: fixture.bookingID,
		ServiceID: fixture.serviceID,
		Quantity:  1,
	})
	require.Error(t, err)
	assert.Equal(t, failure.KindConflict, failure.GetKind(err))
}
