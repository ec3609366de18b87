package router

import (
	"fmt"
	"io"
)

const usage = `Usage: lodge <command> [flags]

Database:
  init-db                                              create the schema

Guests and rooms:
  add-guest        --name [--phone] [--email]          register a guest
  list-guests                                          list guests
  add-room         --number --type --rate              register a room
  list-rooms                                           list rooms

Bookings:
  create-booking   --guest-id --room-id --check-in --check-out
  complete-booking --booking-id                        finish a stay
  cancel-booking   --booking-id                        void a stay
  list-bookings    [--status]                          list bookings

Services and orders:
  service add      --name --price [--category]         add a catalog entry
  service list                                         list the catalog
  order add        --booking-id --service-id [--quantity] [--notes]
  order list       [--booking-id]                      list orders

Billing:
  invoice generate --booking-id [--issue-date] [--due-date]
  invoice show     --invoice-id                        print a full statement
  invoice list                                         list invoices
  payment add      --invoice-id --amount --method [--payment-date] [--notes]
  payment list     [--invoice-id]                      list payments

Expenses:
  expense add      --category --amount [--description] [--expense-date]
  expense list     [--month] [--year]                  report with total

Dates are ISO YYYY-MM-DD. The database file defaults to hotel.db in the
working directory; set DB_SQLITE_PATH to override.
`

func printUsage(out io.Writer) {
	fmt.Fprint(out, usage)
}
