// Package notify sends push notifications about available package updates.
package notify

import (
	"context"
	"fmt"
)

// Message is a single push notification
type Message struct {
	Title string
	Body  string
}

// Sender delivers a Message.
// A false result with a nil error is a delivery the service rejected;
// a non-nil error is a transport fault.
type Sender interface {
	Send(ctx context.Context, msg Message) (bool, error)
}

// UpdateMessage builds the notification for a newly available version
func UpdateMessage(pkg, version string) Message {
	return Message{
		Title: pkg + " Update Available!",
		Body:  fmt.Sprintf("Version %s of FreeBSD package %s is available.", version, pkg),
	}
}
