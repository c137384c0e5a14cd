package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/punchdesk/attendance-backend-go/internal/config"
	appHTTP "github.com/punchdesk/attendance-backend-go/internal/handler/http"
	"github.com/punchdesk/attendance-backend-go/internal/pkg/clock"
	"github.com/punchdesk/attendance-backend-go/internal/pkg/database"
	"github.com/punchdesk/attendance-backend-go/internal/pkg/geo"
	"github.com/punchdesk/attendance-backend-go/internal/pkg/jwt"
	"github.com/punchdesk/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/punchdesk/attendance-backend-go/internal/service/attendance"
	employeeService "github.com/punchdesk/attendance-backend-go/internal/service/employee"
	holidayService "github.com/punchdesk/attendance-backend-go/internal/service/holiday"
	reportService "github.com/punchdesk/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	// Validated in config.Load
	loc, err := time.LoadLocation(cfg.Office.Timezone)
	if err != nil {
		fmt.Println("Error loading office timezone:", err)
		return
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)

	jwtService := jwt.NewService(cfg.JWT.Secret)
	geofence := geo.NewGeofence(cfg.Office.Latitude, cfg.Office.Longitude, cfg.Office.MaxDistanceM)
	clk := clock.System()

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, geofence, clk, loc)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo, holidayRepo, clk, loc)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg.App,
		jwtService,
		employeeRepo,
		attendanceHandler,
		holidayHandler,
		employeeHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
