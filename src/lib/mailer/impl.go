package mailer

import (
	"errors"
	"log"
	"os"
	"sync"

	"transferd/src/lib"
)

var (
	queue chan *lib.SendMailInput
	once  sync.Once
)

func start() {
	queue = make(chan *lib.SendMailInput, 64)
	go func() {
		for input := range queue {
			if err := lib.SendMail(input); err != nil {
				log.Printf("Error sending mail to %v: %s\n", input.To, err.Error())
			}
		}
	}()
}

// NewMailerMessage queues a message for background delivery. Delivery is
// best-effort; failures are logged by the worker, not returned.
func NewMailerMessage(input *lib.SendMailInput) error {
	if os.Getenv("SMTP_HOST") == "" {
		return errors.New("smtp is not configured")
	}
	once.Do(start)
	select {
	case queue <- input:
		return nil
	default:
		return errors.New("mailer queue is full")
	}
}
