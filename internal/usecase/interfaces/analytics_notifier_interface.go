package interfaces

import (
	"context"

	"sabores_pix/internal/domain/entities"
)

// IAnalyticsNotifier delivers order lifecycle events to the marketing
// analytics receiver.
//
// Delivery is strictly best-effort: implementations of NotifyOrderAsync run
// off the caller's critical path, swallow their own failures, and must never
// influence the HTTP outcome of the payment or webhook flows.
type IAnalyticsNotifier interface {
	// NotifyOrder performs one synchronous delivery attempt. A disabled
	// notifier (no token configured) returns nil without any network call.
	NotifyOrder(ctx context.Context, event entities.OrderEvent) error

	// NotifyOrderAsync dispatches NotifyOrder on a detached context and only
	// logs failures.
	NotifyOrderAsync(event entities.OrderEvent)
}
