package entity

import "fmt"

// PushTicketProcessingComplete is the notification type sent once a batch
// of legs has been processed for a trip.
const PushTicketProcessingComplete = "TicketProcessingComplete"

// TicketProcessingCompletePush is the completion notification content
type TicketProcessingCompletePush struct {
	Title string
	Body  string
}

// NewTicketProcessingCompletePush builds the completion notification for a
// trip to the given destination city.
func NewTicketProcessingCompletePush(destinationCity string) TicketProcessingCompletePush {
	return TicketProcessingCompletePush{
		Title: "Your tickets are ready",
		Body:  fmt.Sprintf("We have added the flight tickets for your trip to %s.", destinationCity),
	}
}
