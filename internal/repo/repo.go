package repo

import (
	"github.com/dragonspin/dragonspin/internal/pg"
	auditrepo "github.com/dragonspin/dragonspin/internal/repo/audit-repo"
	balancerepo "github.com/dragonspin/dragonspin/internal/repo/balance-repo"
	entitlementrepo "github.com/dragonspin/dragonspin/internal/repo/entitlement-repo"
	paymentrepo "github.com/dragonspin/dragonspin/internal/repo/payment-repo"
	spinrepo "github.com/dragonspin/dragonspin/internal/repo/spin-repo"
	taskrepo "github.com/dragonspin/dragonspin/internal/repo/task-repo"
	userrepo "github.com/dragonspin/dragonspin/internal/repo/user-repo"
)

// Repositories exposes the concrete repos; each service narrows them to
// the interface it declares.
type Repositories struct {
	UserRepo        *userrepo.Repository
	EntitlementRepo *entitlementrepo.Repository
	SpinRepo        *spinrepo.Repository
	BalanceRepo     *balancerepo.Repository
	TaskRepo        *taskrepo.Repository
	PaymentRepo     *paymentrepo.Repository
	AuditRepo       *auditrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		EntitlementRepo: entitlementrepo.New(conn),
		SpinRepo:        spinrepo.New(conn),
		BalanceRepo:     balancerepo.New(conn),
		TaskRepo:        taskrepo.New(conn),
		PaymentRepo:     paymentrepo.New(conn),
		AuditRepo:       auditrepo.New(conn),
	}
}
