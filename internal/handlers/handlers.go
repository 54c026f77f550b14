package handlers

import (
	"net/http"

	_ "github.com/dragonspin/dragonspin/docs"
	authhandlers "github.com/dragonspin/dragonspin/internal/handlers/auth"
	paymenthandlers "github.com/dragonspin/dragonspin/internal/handlers/payment"
	spinhandlers "github.com/dragonspin/dragonspin/internal/handlers/spin"
	taskhandlers "github.com/dragonspin/dragonspin/internal/handlers/task"
	"github.com/dragonspin/dragonspin/internal/service"
	"github.com/dragonspin/dragonspin/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type SpinHandler interface {
	Execute(w http.ResponseWriter, r *http.Request)
	Available(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Unlock(w http.ResponseWriter, r *http.Request)
}

type ReviewHandler interface {
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type TaskHandler interface {
	Current(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	Webhook(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	SpinHandler    SpinHandler
	ReviewHandler  ReviewHandler
	TaskHandler    TaskHandler
	PaymentHandler PaymentHandler

	// AdminIDs is the allowlist the review routes are gated on.
	AdminIDs []int
}

func New(s *service.Services, adminIDs []int) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		SpinHandler:    spinhandlers.New(s.SpinService, s.EntitlementService, s.TaskService),
		ReviewHandler:  spinhandlers.NewReview(s.SpinService),
		TaskHandler:    taskhandlers.New(s.TaskService),
		PaymentHandler: paymenthandlers.New(s.PaymentService),
		AdminIDs:       adminIDs,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		// The gateway authenticates by signature, not by bearer token.
		r.Post("/webhook/fendpay", h.PaymentHandler.Webhook)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/spin", func(r chi.Router) {
				r.Post("/", h.SpinHandler.Execute)
				r.Get("/available", h.SpinHandler.Available)
				r.Get("/history", h.SpinHandler.History)
				r.Post("/unlock", h.SpinHandler.Unlock)
			})
			r.Get("/task/current", h.TaskHandler.Current)
			r.Route("/payment", func(r chi.Router) {
				r.Post("/order", h.PaymentHandler.CreateOrder)
				r.Get("/status", h.PaymentHandler.Status)
				r.Get("/history", h.PaymentHandler.History)
			})
			r.Route("/admin/spin", func(r chi.Router) {
				r.Use(auth.AdminMiddleware(h.AdminIDs))
				r.Post("/approve", h.ReviewHandler.Approve)
				r.Post("/reject", h.ReviewHandler.Reject)
			})
		})
	})

	return r
}
