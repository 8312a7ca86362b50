package notifier

import "macdealtracker/internal/deal"

// Notifier represents a service for delivering deal alerts
type Notifier interface {
	// SendDeals delivers the ranked deals. An empty slice is a no-op.
	SendDeals(deals []deal.Deal) error
}
