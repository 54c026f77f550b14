package repo

import (
	"testing"

	auditrepo "github.com/dragonspin/dragonspin/internal/repo/audit-repo"
	balancerepo "github.com/dragonspin/dragonspin/internal/repo/balance-repo"
	entitlementrepo "github.com/dragonspin/dragonspin/internal/repo/entitlement-repo"
	paymentrepo "github.com/dragonspin/dragonspin/internal/repo/payment-repo"
	spinrepo "github.com/dragonspin/dragonspin/internal/repo/spin-repo"
	taskrepo "github.com/dragonspin/dragonspin/internal/repo/task-repo"
	userrepo "github.com/dragonspin/dragonspin/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repo := New(mockDB)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.EntitlementRepo)
	assert.NotNil(t, repo.SpinRepo)
	assert.NotNil(t, repo.BalanceRepo)
	assert.NotNil(t, repo.TaskRepo)
	assert.NotNil(t, repo.PaymentRepo)
	assert.NotNil(t, repo.AuditRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &entitlementrepo.Repository{}, repo.EntitlementRepo)
	assert.IsType(t, &spinrepo.Repository{}, repo.SpinRepo)
	assert.IsType(t, &balancerepo.Repository{}, repo.BalanceRepo)
	assert.IsType(t, &taskrepo.Repository{}, repo.TaskRepo)
	assert.IsType(t, &paymentrepo.Repository{}, repo.PaymentRepo)
	assert.IsType(t, &auditrepo.Repository{}, repo.AuditRepo)

	if err := mockDB.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
