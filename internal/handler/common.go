package handler

import (
	"context"
	"time"
)

// contextWithPublishTimeout bounds a background event publish. Publishes
// run detached from the request, so they carry their own deadline.
func contextWithPublishTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}
