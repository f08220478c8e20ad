package support

import "github.com/google/uuid"

type TicketResponse struct {
	TicketID uuid.UUID `json:"ticketId"`
}
