//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"lodge/config"
	"lodge/infras/sqlite"
	"lodge/transport/cli"
	"lodge/transport/cli/router"

	bookingRepository "lodge/internal/domains/booking/repository"
	bookingService "lodge/internal/domains/booking/service"
	catalogRepository "lodge/internal/domains/catalog/repository"
	catalogService "lodge/internal/domains/catalog/service"
	expenseRepository "lodge/internal/domains/expense/repository"
	expenseService "lodge/internal/domains/expense/service"
	guestRepository "lodge/internal/domains/guest/repository"
	guestService "lodge/internal/domains/guest/service"
	invoiceRepository "lodge/internal/domains/invoice/repository"
	invoiceService "lodge/internal/domains/invoice/service"
	orderRepository "lodge/internal/domains/order/repository"
	orderService "lodge/internal/domains/order/service"
	paymentRepository "lodge/internal/domains/payment/repository"
	paymentService "lodge/internal/domains/payment/service"

	bookingHandler "lodge/internal/handlers/booking"
	catalogHandler "lodge/internal/handlers/catalog"
	databaseHandler "lodge/internal/handlers/database"
	expenseHandler "lodge/internal/handlers/expense"
	guestHandler "lodge/internal/handlers/guest"
	invoiceHandler "lodge/internal/handlers/invoice"
	orderHandler "lodge/internal/handlers/order"
	paymentHandler "lodge/internal/handlers/payment"
	roomHandler "lodge/internal/handlers/room"

	roomRepository "lodge/internal/domains/room/repository"
	roomService "lodge/internal/domains/room/service"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	sqlite.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var orderDomain = wire.NewSet(
	orderRepository.New,
	orderService.New,
)

var invoiceDomain = wire.NewSet(
	invoiceRepository.New,
	invoiceRepository.NewItem,
	invoiceService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var expenseDomain = wire.NewSet(
	expenseRepository.New,
	expenseService.New,
)

var domains = wire.NewSet(
	guestDomain,
	roomDomain,
	bookingDomain,
	catalogDomain,
	orderDomain,
	invoiceDomain,
	paymentDomain,
	expenseDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	databaseHandler.New,
	guestHandler.New,
	roomHandler.New,
	bookingHandler.New,
	catalogHandler.New,
	orderHandler.New,
	invoiceHandler.New,
	paymentHandler.New,
	expenseHandler.New,
	router.New,
)

func InitializeCLI() (*cli.CLI, error) {
	wire.Build(
		configurations,
		infrastructures,
		domains,
		routing,
		cli.New,
	)

	return &cli.CLI{}, nil
}
