package mail

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/Rev0212/meeting/internal/models"
)

const senderName = "Meeting Room Booking System"

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends booking emails over SMTP. Callers treat sends as best effort;
// errors are returned for logging only and never block a booking.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func New(cfg Config) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (m *Mailer) SendBookingConfirmation(b *models.Booking) error {
	return m.send(b.UserEmail, "Booking Confirmation: "+b.Title, confirmationBody(b))
}

func (m *Mailer) SendCancellationNotification(b *models.Booking) error {
	return m.send(b.UserEmail, "Booking Cancelled: "+b.Title, cancellationBody(b))
}

func (m *Mailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, senderName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)
	return m.dialer.DialAndSend(msg)
}

func confirmationBody(b *models.Booking) string {
	equipment := strings.Join(b.RequiredEquipment, ", ")
	if equipment == "" { equipment = "None" }
	return fmt.Sprintf(`<h2>Your Meeting Room is Booked!</h2>
<p><strong>Meeting:</strong> %s</p>
<p><strong>Room:</strong> %s</p>
<p><strong>Date:</strong> %s</p>
<p><strong>Time:</strong> %s - %s</p>
<p><strong>Attendees:</strong> %d</p>
<p><strong>Equipment:</strong> %s</p>
<p>Thank you for using our Meeting Room Booking System.</p>`,
		b.Title, b.RoomName,
		b.Date.Format("Monday, January 2, 2006"),
		b.StartTime.Format("3:04 PM"), b.EndTime.Format("3:04 PM"),
		b.AttendeeCount, equipment)
}

func cancellationBody(b *models.Booking) string {
	return fmt.Sprintf(`<h2>Your Meeting Room Booking has been Cancelled</h2>
<p><strong>Meeting:</strong> %s</p>
<p><strong>Room:</strong> %s</p>
<p><strong>Date:</strong> %s</p>
<p><strong>Time:</strong> %s - %s</p>
<p>This booking has been successfully cancelled.</p>`,
		b.Title, b.RoomName,
		b.Date.Format("January 2, 2006"),
		b.StartTime.Format("3:04 PM"), b.EndTime.Format("3:04 PM"))
}

// Disabled satisfies the notifier contract when SMTP is not configured;
// sends are dropped.
type Disabled struct{}

func (Disabled) SendBookingConfirmation(*models.Booking) error      { return nil }
func (Disabled) SendCancellationNotification(*models.Booking) error { return nil }
