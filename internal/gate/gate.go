package gate

import (
	"context"
	"fmt"

	"github.com/obentoo/pkg-update-checker/internal/notify"
)

// Outcome is what one evaluation did
type Outcome int

const (
	// OutcomeNoUpdate: no update and no marker, nothing touched
	OutcomeNoUpdate Outcome = iota
	// OutcomeMarkerRemoved: the episode ended and the marker was deleted
	OutcomeMarkerRemoved
	// OutcomeNotified: the send succeeded and the marker was created
	OutcomeNotified
	// OutcomeSendFailed: the service rejected the send, no marker
	OutcomeSendFailed
	// OutcomeSuppressed: the marker was present, no send attempted
	OutcomeSuppressed
)

var outcomeNames = map[Outcome]string{
	OutcomeNoUpdate:      "no-update",
	OutcomeMarkerRemoved: "marker-removed",
	OutcomeNotified:      "notified",
	OutcomeSendFailed:    "send-failed",
	OutcomeSuppressed:    "suppressed",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Gate applies the notify/suppress/clear rules around a Marker
type Gate struct {
	marker *Marker
	sender notify.Sender
}

// New creates a gate that records deliveries of sender in marker
func New(marker *Marker, sender notify.Sender) *Gate {
	return &Gate{marker: marker, sender: sender}
}

// Evaluate runs one step of the state machine. msg is only sent when
// hasUpdate is true and no marker exists.
//
// A transport error from the sender is returned as is and leaves no marker.
// If the send succeeded but the marker could not be written, the outcome is
// OutcomeNotified together with the marker error.
func (g *Gate) Evaluate(ctx context.Context, hasUpdate bool, msg notify.Message) (Outcome, error) {
	exists, err := g.marker.Exists()
	if err != nil {
		return OutcomeNoUpdate, err
	}

	if !hasUpdate {
		if !exists {
			return OutcomeNoUpdate, nil
		}
		if err := g.marker.Remove(); err != nil {
			return OutcomeNoUpdate, err
		}
		return OutcomeMarkerRemoved, nil
	}

	if exists {
		return OutcomeSuppressed, nil
	}

	ok, err := g.sender.Send(ctx, msg)
	if err != nil {
		return OutcomeSendFailed, err
	}
	if !ok {
		return OutcomeSendFailed, nil
	}

	if err := g.marker.Create(); err != nil {
		return OutcomeNotified, err
	}
	return OutcomeNotified, nil
}
