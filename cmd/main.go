package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/salasys/RoomReservations/internal/cli"
	"github.com/salasys/RoomReservations/internal/config"
	clientsRepo "github.com/salasys/RoomReservations/internal/infra/storage/clients"
	reservationsRepo "github.com/salasys/RoomReservations/internal/infra/storage/reservations"
	roomsRepo "github.com/salasys/RoomReservations/internal/infra/storage/rooms"
	"github.com/salasys/RoomReservations/internal/infra/storage/sqlite"
	registryService "github.com/salasys/RoomReservations/internal/service/registry"
	reservationsService "github.com/salasys/RoomReservations/internal/service/reservations"
	bookReservationUC "github.com/salasys/RoomReservations/internal/usecase/book_reservation"
	getAvailableRoomsUC "github.com/salasys/RoomReservations/internal/usecase/get_available_rooms"
	"github.com/salasys/RoomReservations/pkg/logger"
)

func main() {
	// .env overrides are optional; a missing file is not an error
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting RoomReservations...")

	// Open the store. Remember whether the file already existed so the
	// greeting can say if previous state was restored.
	_, statErr := os.Stat(cfg.Database.Path)
	freshStore := os.IsNotExist(statErr)

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		log.Fatal("Failed to open database %s: %v", cfg.Database.Path, err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := sqlite.Bootstrap(ctx, db); err != nil {
		log.Fatal("Failed to bootstrap schema: %v", err)
	}
	log.Info("Database ready at %s (fresh=%v)", cfg.Database.Path, freshStore)

	if freshStore {
		fmt.Println("Starting with an empty reservation book.")
	} else {
		fmt.Printf("Restored existing state from %s.\n", cfg.Database.Path)
	}

	// Initialize repositories
	clientRepository := clientsRepo.NewRepository(db)
	roomRepository := roomsRepo.NewRepository(db)
	reservationRepository := reservationsRepo.NewRepository(db)

	// Initialize use cases
	availabilityUseCase := getAvailableRoomsUC.NewUseCase(roomRepository, reservationRepository, log)
	bookingUseCase := bookReservationUC.NewUseCase(
		clientRepository,
		reservationRepository,
		availabilityUseCase,
		log,
	)

	// Initialize services
	registrySvc := registryService.NewService(clientRepository, roomRepository, log)
	reservationSvc := reservationsService.NewService(reservationRepository, log)

	// Run the interactive menu
	app := cli.NewApp(
		registrySvc,
		reservationSvc,
		availabilityUseCase,
		bookingUseCase,
		cfg.Export.Dir,
		log,
		os.Stdin,
		os.Stdout,
	)

	if err := app.Run(ctx); err != nil {
		log.Fatal("Application error: %v", err)
	}

	log.Info("RoomReservations stopped")
}
