package session

import (
	"context"
	"errors"

	"github.com/ribgsilva/private-notes/business/v1/auth"
	"github.com/ribgsilva/private-notes/sys"
	"gocloud.dev/pubsub"
)

// Consume relays session events from sub to the local subscribers until ctx is done.
// maxWorkers below one runs a single worker.
func Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int) error {
	logger := sys.R.Log
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	workers := make(chan int, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- 1
		go func(m *pubsub.Message) {
			defer func() { <-workers }()
			defer m.Ack()

			logger.Debugf("session event received: %s", string(m.Body))
			delivered, err := auth.Dispatch(m.Body)
			if err != nil {
				logger.Error("failed to dispatch session event: ", err)
				return
			}
			logger.Debugw("session event dispatched", "type", m.Metadata["type"], "subscribers", delivered)
		}(message)
	}

	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
