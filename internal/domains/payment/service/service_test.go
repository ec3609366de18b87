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
	invoiceDto "lodge/internal/domains/invoice/model/dto"
	invoiceRepository "lodge/internal/domains/invoice/repository"
	invoiceService "lodge/internal/domains/invoice/service"
	orderDto "lodge/internal/domains/order/model/dto"
	orderRepository "lodge/internal/domains/order/repository"
	orderService "lodge/internal/domains/order/service"
	paymentModel "lodge/internal/domains/payment/model"
	"lodge/internal/domains/payment/model/dto"
	paymentRepository "lodge/internal/domains/payment/repository"
	"lodge/internal/domains/payment/service"
	roomDto "lodge/internal/domains/room/model/dto"
	roomRepository "lodge/internal/domains/room/repository"
	roomService "lodge/internal/domains/room/service"
	"lodge/shared"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
)

type paymentFixture struct {
	service   service.Payment
	invoices  invoiceService.Invoice
	invoiceID string
}

// newPaymentFixture builds a booking with one 70.00 invoice to pay against.
func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.DB.SQLite.Path = filepath.Join(t.TempDir(), "lodge_test.db")
	cfg.DB.SQLite.MigrationTable = "schema_migrations"
	cfg.DB.SQLite.BusyTimeoutMS = 5000
	cfg.Invoice.DueDays = 7

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
	invoiceRepo := invoiceRepository.New(conn)
	itemRepo := invoiceRepository.NewItem(conn)
	paymentRepo := paymentRepository.New(conn)

	guests := guestService.New(guestRepo)
	rooms := roomService.New(roomRepo)
	bookings := bookingService.New(bookingRepo, guestRepo, roomRepo, conn)
	catalog := catalogService.New(catalogRepo)
	orders := orderService.New(orderRepo, bookingRepo, catalogRepo)
	invoices := invoiceService.New(invoiceRepo, itemRepo, bookingRepo, orderRepo, paymentRepo, conn, cfg)

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

	dinner, err := catalog.Create(ctx, catalogDto.CreateServiceRequest{Name: "Dinner", Price: 35, Category: "food"})
	require.NoError(t, err)

	_, err = orders.Create(ctx, orderDto.CreateOrderRequest{BookingID: booking.ID, ServiceID: dinner.ID, Quantity: 2})
	require.NoError(t, err)

	invoice, err := invoices.Generate(ctx, invoiceDto.GenerateInvoiceRequest{BookingID: booking.ID})
	require.NoError(t, err)

	return &paymentFixture{
		service:   service.New(paymentRepo, invoiceRepo, conn),
		invoices:  invoices,
		invoiceID: invoice.ID,
	}
}

func TestPaymentService_Add_StatusTransitions(t *testing.T) {
	fixture := newPaymentFixture(t)
	ctx := context.Background()

	first, err := fixture.service.Add(ctx, dto.CreatePaymentRequest{
		InvoiceID: fixture.invoiceID,
		Amount:    20,
		Method:    "cash",
	})
	require.NoError(t, err)

	assert.Equal(t, "partially_paid", first.InvoiceStatus)
	assert.InDelta(t, 20.0, first.PaidTotal, 0.001)
	assert.InDelta(t, 50.0, first.Balance, 0.001)
	assert.False(t, first.Overpaid)

	second, err := fixture.service.Add(ctx, dto.CreatePaymentRequest{
		InvoiceID: fixture.invoiceID,
		Amount:    50,
		Method:    "card",
	})
	require.NoError(t, err)

	assert.Equal(t, "paid", second.InvoiceStatus)
	assert.InDelta(t, 70.0, second.PaidTotal, 0.001)
	assert.InDelta(t, 0.0, second.Balance, 0.001)
	assert.False(t, second.Overpaid)

	detail, err := fixture.invoices.Show(ctx, fixture.invoiceID)
	require.NoError(t, err)
	assert.Equal(t, "paid", detail.Invoice.Status)
	require.Len(t, detail.Payments, 2)
}

func TestPaymentService_Add_Overpayment(t *testing.T) {
	fixture := newPaymentFixture(t)
	ctx := context.Background()

	res, err := fixture.service.Add(ctx, dto.CreatePaymentRequest{
		InvoiceID: fixture.invoiceID,
		Amount:    100,
		Method:    "transfer",
	})
	require.NoError(t, err)

	assert.True(t, res.Overpaid)
	assert.Equal(t, "paid", res.InvoiceStatus)
	assert.InDelta(t, -30.0, res.Balance, 0.001)
}

func TestPaymentService_GetAll(t *testing.T) {
	fixture := newPaymentFixture(t)
	ctx := context.Background()

	for _, amount := range []float64{20, 30} {
		_, err := fixture.service.Add(ctx, dto.CreatePaymentRequest{
			InvoiceID: fixture.invoiceID,
			Amount:    amount,
			Method:    "cash",
		})
		require.NoError(t, err)
	}

	filter := shared.FilterByField(paymentModel.FieldInvoiceID, paymentModel.TableName, fixture.invoiceID)

	res, err := fixture.service.GetAll(ctx, gDto.QueryParams{SortBy: paymentModel.FieldPaymentDate}, filter)
	require.NoError(t, err)

	require.Len(t, res.Payments, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.InDelta(t, 50.0, res.Total, 0.001)

	none, err := fixture.service.GetAll(ctx, gDto.QueryParams{}, shared.FilterByField(paymentModel.FieldInvoiceID, paymentModel.TableName, "no-such-invoice"))
	require.NoError(t, err)
	assert.Empty(t, none.Payments)
}

func TestPaymentService_Add_Failures(t *testing.T) {
	fixture := newPaymentFixture(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		req      dto.CreatePaymentRequest
		wantKind failure.Kind
	}{
		{
			name: "unknown invoice",
			req: dto.CreatePaymentRequest{
				InvoiceID: "no-such-invoice",
				Amount:    10,
				Method:    "cash",
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "zero amount",
			req: dto.CreatePaymentRequest{
				InvoiceID: fixture.invoiceID,
				Amount:    0,
				Method:    "cash",
			},
			wantKind: failure.KindValidation,
		},
		{
			name: "missing method",
			req: dto.CreatePaymentRequest{
				InvoiceID: fixture.invoiceID,
				Amount:    10,
			},
			wantKind: failure.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fixture.service.Add(ctx, tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, failure.GetKind(err))
		})
	}
}
