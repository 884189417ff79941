package booking

import (
	"context"
	"errors"

	"eventstay/internal/domain"
)

// Publishers fans one event out to several sinks. Every sink is tried;
// failures are joined.
type Publishers []EventPublisher

func (ps Publishers) PublishBookingEvent(ctx context.Context, ev domain.BookingEvent) error {
	var errs []error
	for _, p := range ps {
		if p == nil {
			continue
		}
		if err := p.PublishBookingEvent(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
