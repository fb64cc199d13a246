package enums

// OutboxEventType names a domain event queued through the outbox.
type OutboxEventType string

const (
	EventBookingCreated OutboxEventType = "booking.created"
)

// OutboxAggregateType names the aggregate an outbox event belongs to.
type OutboxAggregateType string

const (
	AggregateBooking OutboxAggregateType = "booking"
)
