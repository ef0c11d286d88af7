// Package syncjob runs the one-shot background account sync. Starting it
// arms a timer; when the timer fires, one synthetic account is appended to
// the ledger and the completion flag flips true.
package syncjob

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"bankmock/internal/ledger"
)

// Controller tracks a single job slot. Restarting while a job is pending
// stops the earlier timer, so at most one completion fires per slot.
type Controller struct {
	store  *ledger.Store
	delay  time.Duration
	logger *zap.Logger

	mu       sync.Mutex
	timer    *time.Timer
	finished bool
}

func NewController(store *ledger.Store, delay time.Duration, logger *zap.Logger) *Controller {
	return &Controller{store: store, delay: delay, logger: logger}
}

// Start resets the completion flag and schedules completion after the
// configured delay. It returns immediately.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.finished = false
	c.timer = time.AfterFunc(c.delay, c.complete)
	c.logger.Info("sync started", zap.Duration("delay", c.delay))
}

// Finished reports whether the most recently started job has completed.
func (c *Controller) Finished() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.finished
}

// complete runs on the timer goroutine. The account is appended before the
// flag flips, so a true flag always implies the new account is visible.
func (c *Controller) complete() {
	acc := c.store.AppendSynthetic()

	c.mu.Lock()
	c.finished = true
	c.mu.Unlock()

	c.logger.Info("sync finished",
		zap.String("account_number", acc.AccountNumber),
		zap.String("bank", acc.Bank),
	)
}
