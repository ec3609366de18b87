// Package router resolves a subcommand into one typed handler call.
package router

import (
	"context"
	"io"

	"lodge/internal/handlers/booking"
	"lodge/internal/handlers/catalog"
	"lodge/internal/handlers/database"
	"lodge/internal/handlers/expense"
	"lodge/internal/handlers/guest"
	"lodge/internal/handlers/invoice"
	"lodge/internal/handlers/order"
	"lodge/internal/handlers/payment"
	"lodge/internal/handlers/room"
	"lodge/shared/failure"
)

type DomainHandlers struct {
	Database database.Handler
	Guest    guest.Handler
	Room     room.Handler
	Booking  booking.Handler
	Catalog  catalog.Handler
	Order    order.Handler
	Invoice  invoice.Handler
	Payment  payment.Handler
	Expense  expense.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}

// Dispatch resolves the command name, peeling one extra argument for the
// grouped commands (service, order, invoice, payment, expense).
func (r *Router) Dispatch(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return failure.ValidationFromString("no command given, run 'help' for usage") //nolint:wrapcheck
	}

	command := args[0]
	rest := args[1:]

	switch command {
	case "init-db":
		return r.DomainHandlers.Database.Init(ctx, rest, out)
	case "add-guest":
		return r.DomainHandlers.Guest.Add(ctx, rest, out)
	case "list-guests":
		return r.DomainHandlers.Guest.List(ctx, rest, out)
	case "add-room":
		return r.DomainHandlers.Room.Add(ctx, rest, out)
	case "list-rooms":
		return r.DomainHandlers.Room.List(ctx, rest, out)
	case "create-booking":
		return r.DomainHandlers.Booking.Create(ctx, rest, out)
	case "complete-booking":
		return r.DomainHandlers.Booking.Complete(ctx, rest, out)
	case "cancel-booking":
		return r.DomainHandlers.Booking.Cancel(ctx, rest, out)
	case "list-bookings":
		return r.DomainHandlers.Booking.List(ctx, rest, out)
	case "service":
		return r.dispatchGroup(ctx, command, rest, out, map[string]handlerFunc{
			"add":  r.DomainHandlers.Catalog.Add,
			"list": r.DomainHandlers.Catalog.List,
		})
	case "order":
		return r.dispatchGroup(ctx, command, rest, out, map[string]handlerFunc{
			"add":  r.DomainHandlers.Order.Add,
			"list": r.DomainHandlers.Order.List,
		})
	case "invoice":
		return r.dispatchGroup(ctx, command, rest, out, map[string]handlerFunc{
			"generate": r.DomainHandlers.Invoice.Generate,
			"show":     r.DomainHandlers.Invoice.Show,
			"list":     r.DomainHandlers.Invoice.List,
		})
	case "payment":
		return r.dispatchGroup(ctx, command, rest, out, map[string]handlerFunc{
			"add":  r.DomainHandlers.Payment.Add,
			"list": r.DomainHandlers.Payment.List,
		})
	case "expense":
		return r.dispatchGroup(ctx, command, rest, out, map[string]handlerFunc{
			"add":  r.DomainHandlers.Expense.Add,
			"list": r.DomainHandlers.Expense.List,
		})
	case "help", "-h", "--help":
		printUsage(out)

		return nil
	default:
		return failure.ValidationFromString("unknown command " + command + ", run 'help' for usage") //nolint:wrapcheck
	}
}

type handlerFunc func(ctx context.Context, args []string, out io.Writer) error

func (r *Router) dispatchGroup(ctx context.Context, group string, args []string, out io.Writer, handlers map[string]handlerFunc) error {
	if len(args) == 0 {
		return failure.ValidationFromString(group + " requires a subcommand, run 'help' for usage") //nolint:wrapcheck
	}

	handler, ok := handlers[args[0]]
	if !ok {
		return failure.ValidationFromString("unknown subcommand " + group + " " + args[0] + ", run 'help' for usage") //nolint:wrapcheck
	}

	return handler(ctx, args[1:], out)
}
