package events

import "time"

// One lifecycle topic per collection. The financial snapshot consumer
// subscribes to all of them; any mutation invalidates the derived caches.
const (
	EmployeeLifecycleTopic = "bizdash.employee.lifecycle.v1"
	ProjectLifecycleTopic  = "bizdash.project.lifecycle.v1"
	InvoiceLifecycleTopic  = "bizdash.invoice.lifecycle.v1"
	ExpenseLifecycleTopic  = "bizdash.expense.lifecycle.v1"
)

func LifecycleTopics() []string {
	return []string{
		EmployeeLifecycleTopic,
		ProjectLifecycleTopic,
		InvoiceLifecycleTopic,
		ExpenseLifecycleTopic,
	}
}

// LifecycleEvent records that one entity was created, updated or deleted.
type LifecycleEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
