package jobs

import (
	"context"
	"log"
	"time"

	"pay-chain.backend/internal/infrastructure/repositories"
)

// LoanRequestExpiryJob expires pending loan requests nobody funded in time
type LoanRequestExpiryJob struct {
	repo     *repositories.LoanRequestRepositoryImpl
	interval time.Duration
	maxAge   time.Duration
	stop     chan struct{}
}

func NewLoanRequestExpiryJob(repo *repositories.LoanRequestRepositoryImpl, maxAge time.Duration) *LoanRequestExpiryJob {
	return &LoanRequestExpiryJob{
		repo:     repo,
		interval: time.Minute,
		maxAge:   maxAge,
		stop:     make(chan struct{}),
	}
}

func (j *LoanRequestExpiryJob) Start(ctx context.Context) {
	log.Println("🕐 Starting loan request expiry job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Loan request expiry job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Loan request expiry job stopped")
			return
		case <-ticker.C:
			j.expireStaleRequests(ctx)
		}
	}
}

func (j *LoanRequestExpiryJob) Stop() {
	close(j.stop)
}

func (j *LoanRequestExpiryJob) expireStaleRequests(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-j.maxAge)

	expired, err := j.repo.ExpirePending(ctx, cutoff)
	if err != nil {
		log.Printf("❌ Error expiring loan requests: %v", err)
		return
	}

	if expired > 0 {
		log.Printf("✅ Expired %d stale loan requests", expired)
	}
}
