package ports

import (
	"context"

	"taxcollection/internal/domain"
)

// PayloadSink receives a submitted tax payload (log, stdout, clipboard)
type PayloadSink interface {
	Submit(ctx context.Context, payload domain.Payload) error
}
