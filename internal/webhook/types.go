package webhook

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string   // Shared secret for signature verification
	AllowedIPs      []string // IP whitelist (optional)
	RateLimitPerMin int      // Max requests per minute per source IP
}

// Task change events sent by the homestead backend.
const (
	EventTaskCreated = "task.created"
	EventTaskUpdated = "task.updated"
	EventTaskDeleted = "task.deleted"
)

// TaskEvent is the webhook payload announcing a change to a task definition.
type TaskEvent struct {
	Event     string `json:"event"`
	ProjectID string `json:"project_id"`
	TaskID    string `json:"task_id"`
}
