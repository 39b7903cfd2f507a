package rabbitmq

const (
	ExchangeName = "events"
	ExchangeKind = "topic"
	QueueName    = "dashboard-service.events"

	// SummaryBinding matches summary updates written by the call agent.
	SummaryBinding = "event.*"
)
