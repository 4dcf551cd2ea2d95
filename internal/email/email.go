package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/hotelbooking/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.ReservationEvent) error {
	fmt.Printf("notify customer %d: %s for reservation %s (room %d, %s - %s)\n",
		event.CustomerID, event.Type, event.ConfirmationCode, event.RoomID,
		event.CheckIn.Format("2006-01-02"), event.CheckOut.Format("2006-01-02"))
	return nil
}
