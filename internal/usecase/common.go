package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/medcharfeddine/nutricoach/internal/domain/apperror"
	"github.com/medcharfeddine/nutricoach/internal/domain/contract"
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
	"github.com/medcharfeddine/nutricoach/internal/infrastructure/metrics"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
)

// lookupErr turns a repository read failure into a use-case error.
func lookupErr(err error, what string) error {
	if errors.Is(err, apperror.ErrNotFound) {
		return apperror.NotFound("%s not found", what)
	}
	return apperror.Internal("failed to load "+what, err)
}

func requireAdmin(actor entity.Actor) error {
	if !actor.IsAdmin() {
		return apperror.Forbidden("admin access required")
	}
	return nil
}

// dispatcher delivers notifications in the background. Failures are logged
// and counted, never returned.
type dispatcher struct {
	notifier contract.INotifier
	logger   usecasecontract.IAppLogger
	timeout  time.Duration
}

func newDispatcher(notifier contract.INotifier, logger usecasecontract.IAppLogger, timeout time.Duration) *dispatcher {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &dispatcher{notifier: notifier, logger: logger, timeout: timeout}
}

func (d *dispatcher) send(notifications ...entity.Notification) {
	if d == nil || d.notifier == nil {
		return
	}
	for _, n := range notifications {
		if n.RecipientEmail == "" {
			continue
		}
		go func(n entity.Notification) {
			ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
			defer cancel()
			if err := d.notifier.Notify(ctx, n); err != nil {
				metrics.IncNotificationFailure(string(n.Kind))
				d.logger.Warnf("notification %s to %s failed: %v", n.Kind, n.RecipientEmail, err)
			}
		}(n)
	}
}
