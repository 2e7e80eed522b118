package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventcheckin/internal/delivery/http/controllers"
	"eventcheckin/internal/delivery/http/middleware"
	"eventcheckin/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Event and check-in routes require a Bearer token; auth and swagger are open.
func NewRouter(
	eventController *controllers.EventController,
	attendanceController *controllers.AttendanceController,
	authController *controllers.AuthController,
	verifier domain.TokenVerifier,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier)

	// Events
	mux.HandleFunc("POST /eventos", auth(eventController.CreateEvent))
	mux.HandleFunc("GET /eventos", auth(eventController.FindEvents))
	mux.HandleFunc("GET /eventos/convidados", auth(eventController.GuestListByEventName))
	mux.HandleFunc("GET /eventos/{eventID}", auth(eventController.GetEventByID))
	mux.HandleFunc("PATCH /eventos/{eventID}", auth(eventController.UpdateEvent))
	mux.HandleFunc("DELETE /eventos/{eventID}", auth(eventController.DeleteEvent))

	// Check-in / attendance
	mux.HandleFunc("POST /eventos/{eventID}/check-in", auth(attendanceController.CheckIn))
	mux.HandleFunc("POST /eventos/{eventID}/check-out", auth(attendanceController.CheckOut))
	mux.HandleFunc("GET /eventos/{eventID}/convidados/{email}/registros", auth(attendanceController.GetCheckInRecords))
	mux.HandleFunc("GET /eventos/{eventID}/presentes", auth(attendanceController.GetPresentAbsent))
	mux.HandleFunc("POST /eventos/{eventID}/relatorio", auth(attendanceController.GenerateReport))

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
