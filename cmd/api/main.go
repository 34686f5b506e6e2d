package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/utp-asistencia/asistencia-backend-go/internal/config"
	appHTTP "github.com/utp-asistencia/asistencia-backend-go/internal/handler/http"
	"github.com/utp-asistencia/asistencia-backend-go/internal/pkg/cron"
	"github.com/utp-asistencia/asistencia-backend-go/internal/pkg/database"
	"github.com/utp-asistencia/asistencia-backend-go/internal/repository/postgresql"
	attendanceService "github.com/utp-asistencia/asistencia-backend-go/internal/service/attendance"
	authorizationService "github.com/utp-asistencia/asistencia-backend-go/internal/service/authorization"
	movementService "github.com/utp-asistencia/asistencia-backend-go/internal/service/movement"
	personnelService "github.com/utp-asistencia/asistencia-backend-go/internal/service/personnel"
	reportService "github.com/utp-asistencia/asistencia-backend-go/internal/service/report"
	userService "github.com/utp-asistencia/asistencia-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	location, err := time.LoadLocation(cfg.Attendance.Timezone)
	if err != nil {
		slog.Warn("Unknown timezone, falling back to UTC", "timezone", cfg.Attendance.Timezone)
		location = time.UTC
	}

	lateCutoff, err := cfg.LateCutoffMinutes()
	if err != nil {
		fmt.Println("Error in attendance configuration:", err)
		return
	}

	personnelRepo := postgresql.NewPersonnelRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	movementRepo := postgresql.NewMovementRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	authorizationRepo := postgresql.NewAuthorizationRepository(db)

	geoFence := attendanceService.GeoFence{
		Enabled:      cfg.Attendance.SiteRadiusMeter > 0,
		Latitude:     cfg.Attendance.SiteLatitude,
		Longitude:    cfg.Attendance.SiteLongitude,
		RadiusMeters: cfg.Attendance.SiteRadiusMeter,
	}

	personnelSvc := personnelService.NewPersonnelService(personnelRepo, attendanceRepo)
	userSvc := userService.NewUserService(userRepo, personnelRepo)
	movementSvc := movementService.NewMovementService(db, movementRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		personnelRepo,
		movementRepo,
		authorizationRepo,
		geoFence,
		location,
	)
	authorizationSvc := authorizationService.NewAuthorizationService(authorizationRepo, movementRepo, userRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, userRepo, reportService.Settings{
		LateCutoffMinutes: lateCutoff,
		AbsenceWeight:     cfg.Attendance.AbsenceWeight,
		LateWeight:        cfg.Attendance.LateWeight,
		Location:          location,
	})

	if err := movementSvc.EnsureDefaultCatalog(context.Background()); err != nil {
		fmt.Println("Error seeding movement catalog:", err)
		return
	}

	personnelHandler := appHTTP.NewPersonnelHandler(personnelSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	movementHandler := appHTTP.NewMovementHandler(movementSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	authorizationHandler := appHTTP.NewAuthorizationHandler(authorizationSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AllowedOrigins: cfg.App.AllowedOrigins,
			AppName:        "asistencia-backend",
			Environment:    cfg.App.Env,
			LogLevel:       parseLogLevel(cfg.App.LogLevel),
		},
		personnelHandler,
		userHandler,
		movementHandler,
		attendanceHandler,
		authorizationHandler,
		reportHandler,
	)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, location).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Shutdown error:", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
