// hotelctl is the command shell over the booking ledger: each of the four
// actions of the desktop form becomes a subcommand. With the default
// in-memory DSN every invocation starts from the seed data; point
// --database-url at a sqlite file to keep bookings between invocations.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MarkoPoloResearchLab/hotel/internal/store"
	"github.com/MarkoPoloResearchLab/hotel/pkg/hotel"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagDatabaseURL      = "database-url"
	configKeyDatabaseURL = "database_url"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hotelctl: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	databaseURL := store.DSNMemory
	cmd := &cobra.Command{
		Use:           "hotelctl",
		Short:         "Room booking command shell",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			viper.AutomaticEnv()
			if err := viper.BindEnv(configKeyDatabaseURL, "HOTEL_DATABASE_URL"); err != nil {
				return err
			}
			if err := viper.BindPFlag(configKeyDatabaseURL, cmd.Flags().Lookup(flagDatabaseURL)); err != nil {
				return err
			}
			if fromEnv := viper.GetString(configKeyDatabaseURL); fromEnv != "" {
				databaseURL = fromEnv
			}
			return nil
		},
	}
	cmd.PersistentFlags().String(flagDatabaseURL, store.DSNMemory, "reservation store DSN (memory, sqlite://path, or a sqlite file path)")

	cmd.AddCommand(newBookCommand(&databaseURL))
	cmd.AddCommand(newCancelCommand(&databaseURL))
	cmd.AddCommand(newRoomsCommand(&databaseURL))
	cmd.AddCommand(newBookingsCommand(&databaseURL))
	return cmd
}

func newBookCommand(databaseURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "book ROOM DATE",
		Short: "Book a room for a date (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), *databaseURL, func(ctx context.Context, bookingService *hotel.Service) error {
				roomNumber, rawDate, err := bookingArguments(args)
				if err != nil {
					return err
				}
				price, err := bookingService.Book(ctx, roomNumber, rawDate)
				if err != nil {
					return err
				}
				cmd.Printf("Booking confirmed. Nightly price: %d Ft\n", price.Int64())
				return nil
			})
		},
	}
}

func newCancelCommand(databaseURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel ROOM DATE",
		Short: "Cancel the booking for a room and date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), *databaseURL, func(ctx context.Context, bookingService *hotel.Service) error {
				roomNumber, rawDate, err := bookingArguments(args)
				if err != nil {
					return err
				}
				if err := bookingService.Cancel(ctx, roomNumber, rawDate); err != nil {
					return err
				}
				cmd.Println("Booking cancelled.")
				return nil
			})
		},
	}
}

func newRoomsCommand(databaseURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rooms",
		Short: "List the room catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), *databaseURL, func(ctx context.Context, bookingService *hotel.Service) error {
				cmd.Println(hotel.RenderRooms(bookingService.ListRooms(ctx)))
				return nil
			})
		},
	}
}

func newBookingsCommand(databaseURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "bookings",
		Short: "List all bookings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), *databaseURL, func(ctx context.Context, bookingService *hotel.Service) error {
				reservations, err := bookingService.ListBookings(ctx)
				if err != nil {
					return err
				}
				cmd.Println(hotel.RenderBookings(reservations))
				return nil
			})
		},
	}
}

func bookingArguments(args []string) (hotel.RoomNumber, string, error) {
	if strings.TrimSpace(args[0]) == "" {
		return hotel.RoomNumber{}, "", fmt.Errorf("%w: room number", hotel.ErrEmptyField)
	}
	if strings.TrimSpace(args[1]) == "" {
		return hotel.RoomNumber{}, "", fmt.Errorf("%w: date", hotel.ErrEmptyField)
	}
	roomNumber, err := hotel.NewRoomNumber(args[0])
	if err != nil {
		return hotel.RoomNumber{}, "", err
	}
	return roomNumber, args[1], nil
}

func withService(ctx context.Context, databaseURL string, fn func(ctx context.Context, bookingService *hotel.Service) error) error {
	reservationStore, cleanup, err := store.Open(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("store open: %w", err)
	}
	defer func() { _ = cleanup() }()

	clock := func() time.Time { return time.Now().UTC() }
	bookingService, err := hotel.NewService(hotel.NewCatalog(), reservationStore, clock)
	if err != nil {
		return fmt.Errorf("booking service init: %w", err)
	}
	if err := bookingService.LoadSeed(ctx, hotel.DefaultSeed()); err != nil {
		return fmt.Errorf("seed load: %w", err)
	}
	return fn(ctx, bookingService)
}
