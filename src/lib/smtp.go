package lib

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/wneessen/go-mail"

	"travel/src/utils"
)

func GetSMTPClient() (*mail.Client, error) {
	host := os.Getenv("SMTP_HOST")
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	user := os.Getenv("SMTP_USERNAME")
	pass := os.Getenv("SMTP_PASSWORD")
	c, err := mail.NewClient(host, mail.WithPort(port), mail.WithSMTPAuth(mail.SMTPAuthPlain), mail.WithUsername(user), mail.WithPassword(pass))
	if err != nil {
		log.Printf("Could not initialize smtp client: %s\n", err.Error())
		return nil, err
	}
	return c, nil
}

type SendMailInput struct {
	From     string
	FromName string
	To       []string
	ReplyTo  string
	Subject  string
	Body     string
	Html     bool
}

func NewMailMsg(input *SendMailInput) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(input.FromName, input.From); err != nil {
		return nil, fmt.Errorf("set From address: %w", err)
	}
	if err := msg.To(input.To...); err != nil {
		return nil, fmt.Errorf("set To address: %w", err)
	}
	if input.ReplyTo != "" {
		if err := msg.ReplyTo(input.ReplyTo); err != nil {
			return nil, fmt.Errorf("set Reply-To address: %w", err)
		}
	}
	msg.Subject(input.Subject)
	if input.Html {
		msg.SetBodyString(mail.TypeTextHTML, input.Body)
	} else {
		msg.SetBodyString(mail.TypeTextPlain, input.Body)
	}
	return msg, nil
}

// BookingConfirmationMail builds the message sent to the traveller.
func BookingConfirmationMail(from, fromName string, evt BookingEvent) *SendMailInput {
	title := evt.PackageTitle
	if title == "" {
		title = evt.PackageID
	}
	body := fmt.Sprintf(`Thank you for booking %s!

Booking reference: %s
Departure date: %s
Guests: %d
Total: %s
Status: %s

We will be in touch shortly to confirm your trip.
`, title, evt.BookingID, evt.DepartureDate.Format("January 2, 2006"), evt.GuestCount, utils.FormatPrice(evt.TotalPrice), evt.Status)

	return &SendMailInput{
		From:     from,
		FromName: fromName,
		To:       []string{evt.Email},
		Subject:  fmt.Sprintf("Your booking for %s has been received", title),
		Body:     body,
	}
}

type MailNotifier struct {
	client   *mail.Client
	from     string
	fromName string
}

func NewMailNotifier(client *mail.Client, from, fromName string) *MailNotifier {
	return &MailNotifier{client: client, from: from, fromName: fromName}
}

func (n *MailNotifier) Name() string {
	return "smtp"
}

// BookingCreated mails the traveller; events without an address are skipped.
func (n *MailNotifier) BookingCreated(ctx context.Context, evt BookingEvent) error {
	if evt.Email == "" {
		return nil
	}
	msg, err := NewMailMsg(BookingConfirmationMail(n.from, n.fromName, evt))
	if err != nil {
		return err
	}
	return n.client.DialAndSendWithContext(ctx, msg)
}
