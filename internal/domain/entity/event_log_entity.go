package entity

import (
	"time"
)

// EventLog is an application event persisted alongside user records so operators
// can trace activity across instances behind the load balancer.
type EventLog struct {
	ID         int64     `json:"id"`
	Level      string    `json:"level"`
	Message    string    `json:"message"`
	InstanceID string    `json:"instance_id"`
	CreatedAt  time.Time `json:"created_at"`
}
