//go:build unit

package fake

import (
	"context"

	"github.com/google/uuid"
)

type Notification struct {
	UserID   uuid.UUID
	Category string
	Title    string
	Body     string
}

// Notifier records every notification instead of delivering it.
type Notifier struct {
	Sent []Notification
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Notify(_ context.Context, userID uuid.UUID, category, title, body string) {
	n.Sent = append(n.Sent, Notification{UserID: userID, Category: category, Title: title, Body: body})
}

// SentTo returns the notifications recorded for one user.
func (n *Notifier) SentTo(userID uuid.UUID) []Notification {
	var out []Notification
	for _, msg := range n.Sent {
		if msg.UserID == userID {
			out = append(out, msg)
		}
	}
	return out
}
