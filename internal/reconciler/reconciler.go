package reconciler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dragonspin/dragonspin/internal/alert"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var processingUsers sync.Map

// LedgerRepo finds users whose denormalized counter drifted from the
// entitlement ledger.
type LedgerRepo interface {
	FindMismatchedUsers(ctx context.Context, limit int) ([]int, error)
}

// Issuer heals one user's counter.
type Issuer interface {
	Reconcile(ctx context.Context, userID int) (int, error)
}

// Service sweeps the ledger in the background so drift introduced by
// partial failures gets healed even for users who never hit the read
// path.
type Service struct {
	ledger        LedgerRepo
	issuer        Issuer
	limit         uint32
	workerPool    alert.WorkerPoolI
	sweepInterval time.Duration
}

func New(ledger LedgerRepo, issuer Issuer) *Service {
	return &Service{
		ledger:        ledger,
		issuer:        issuer,
		limit:         1000,
		workerPool:    alert.NewWorkerPool(10),
		sweepInterval: time.Minute,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Reconciler service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping service")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	userIDs, err := s.ledger.FindMismatchedUsers(ctx, int(atomic.LoadUint32(&s.limit)))
	if err != nil {
		zap.L().Error("Failed to fetch users for reconciliation", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, userID := range userIDs {
		userID := userID

		if _, loaded := processingUsers.LoadOrStore(userID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingUsers.Delete(userID)
				_, err := s.issuer.Reconcile(ctx, userID)
				return err
			})
			if err != nil {
				processingUsers.Delete(userID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error reconciling users", zap.Error(err))
	}
}
