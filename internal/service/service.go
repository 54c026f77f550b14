package service

import (
	"github.com/dragonspin/dragonspin/internal/config"
	"github.com/dragonspin/dragonspin/internal/pg"
	"github.com/dragonspin/dragonspin/internal/repo"
	"github.com/dragonspin/dragonspin/internal/service/authservice"
	"github.com/dragonspin/dragonspin/internal/service/entitlementservice"
	"github.com/dragonspin/dragonspin/internal/service/paymentservice"
	"github.com/dragonspin/dragonspin/internal/service/spinservice"
	"github.com/dragonspin/dragonspin/internal/service/taskservice"

	pkgauth "github.com/dragonspin/dragonspin/pkg/auth"
)

type Services struct {
	AuthService        *authservice.Service
	EntitlementService *entitlementservice.Service
	SpinService        *spinservice.Service
	TaskService        *taskservice.Service
	PaymentService     *paymentservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager,
	provider paymentservice.Provider, alerter spinservice.Alerter) *Services {
	entitlementService := entitlementservice.New(repo.EntitlementRepo, repo.UserRepo, repo.AuditRepo, txManager)
	taskService := taskservice.New(repo.TaskRepo, repo.UserRepo, repo.SpinRepo, repo.BalanceRepo, txManager, cfg.Spin)
	spinService := spinservice.New(repo.EntitlementRepo, repo.SpinRepo, repo.UserRepo, repo.BalanceRepo,
		repo.AuditRepo, taskService, alerter, txManager, cfg.Spin)
	paymentService := paymentservice.New(repo.PaymentRepo, repo.UserRepo, repo.AuditRepo, entitlementService,
		taskService, provider, txManager, cfg.ProviderSecret, cfg.PaymentAmount, cfg.BaseURL)
	authService := authservice.New(repo.UserRepo, entitlementService, taskService,
		&pkgauth.HashService{}, &pkgauth.JWTService{}, txManager)

	return &Services{
		AuthService:        authService,
		EntitlementService: entitlementService,
		SpinService:        spinService,
		TaskService:        taskService,
		PaymentService:     paymentService,
	}
}
