package jobs

import (
	"context"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// PendingOrderExpirer is satisfied by *commands.ExpirePendingOrdersCommandHandler.
type PendingOrderExpirer interface {
	Handle(ctx context.Context, cmd commands.ExpirePendingOrdersCommand) (int, error)
}

type PendingOrderExpiryConfig struct {
	// Schedule is a cron spec with an optional seconds field, e.g. "@every 1m".
	Schedule  string
	TTL       time.Duration
	BatchSize int
	// Timeout bounds a single run.
	Timeout time.Duration
}

// PendingOrderExpiryJob rejects orders that restaurants left Pending longer
// than the configured TTL. A run that is still going when the next one is
// due makes the next one skip.
type PendingOrderExpiryJob struct {
	expirer PendingOrderExpirer
	config  PendingOrderExpiryConfig
	cron    *cron.Cron
	logger  logrus.FieldLogger
}

func NewPendingOrderExpiryJob(
	expirer PendingOrderExpirer,
	config PendingOrderExpiryConfig,
	logger logrus.FieldLogger,
) *PendingOrderExpiryJob {
	logger = logger.WithField("component", "pending_order_expiry_job")
	cronLogger := cron.PrintfLogger(logger)

	return &PendingOrderExpiryJob{
		expirer: expirer,
		config:  config,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		logger: logger,
	}
}

func (j *PendingOrderExpiryJob) Start() error {
	cmd, err := commands.NewExpirePendingOrdersCommand(j.config.TTL, j.config.BatchSize)
	if err != nil {
		return err
	}

	if _, err = j.cron.AddFunc(j.config.Schedule, func() {
		j.RunOnce(context.Background(), cmd)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.WithFields(logrus.Fields{
		"schedule": j.config.Schedule,
		"ttl":      j.config.TTL.String(),
	}).Info("Pending order expiry job started")
	return nil
}

// RunOnce performs a single expiry pass and returns how many orders it rejected.
func (j *PendingOrderExpiryJob) RunOnce(ctx context.Context, cmd commands.ExpirePendingOrdersCommand) int {
	if j.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.config.Timeout)
		defer cancel()
	}

	expired, err := j.expirer.Handle(ctx, cmd)
	if err != nil {
		j.logger.WithError(err).WithField("expired", expired).Error("Pending order expiry failed")
	}
	if expired > 0 {
		j.logger.WithField("expired", expired).Info("Expired pending orders")
	}
	return expired
}

// Stop waits for a running pass to finish.
func (j *PendingOrderExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Pending order expiry job stopped")
}
