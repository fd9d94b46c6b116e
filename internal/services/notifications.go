package services

//go:generate mockgen -source=notifications.go -destination=notifications_mock.go -package=services

import (
	"context"
	"sync"
	"time"

	"github.com/pixelift/pixelift-api/internal/logger"
	"github.com/pixelift/pixelift-api/internal/models"
)

// EmailSender sends templated emails.
type EmailSender interface {
	Send(ctx context.Context, to, template string, data models.EmailData) error
}

// Notifier sends account emails in the background. Failures are logged and
// never reach the caller.
type Notifier struct {
	sender       EmailSender
	appURL       string
	lowThreshold int
	timeout      time.Duration
	wg           sync.WaitGroup
}

// NewNotifier creates a notifier. A nil sender disables emails.
func NewNotifier(sender EmailSender, appURL string, lowThreshold int, timeout time.Duration) *Notifier {
	return &Notifier{
		sender:       sender,
		appURL:       appURL,
		lowThreshold: lowThreshold,
		timeout:      timeout,
	}
}

// FirstUpload congratulates the user on their first processed image.
func (n *Notifier) FirstUpload(user *models.User, balance int) {
	n.send(user, models.EmailFirstUpload, balance)
}

// CreditsDepleted tells the user their balance is zero.
func (n *Notifier) CreditsDepleted(user *models.User) {
	n.send(user, models.EmailCreditsDepleted, 0)
}

// AfterDebit sends the low credit or depletion email the new balance calls
// for. Free operations never trigger one.
func (n *Notifier) AfterDebit(user *models.User, balance, cost int) {
	if cost <= 0 {
		return
	}
	switch {
	case balance == 0:
		n.CreditsDepleted(user)
	case balance < n.lowThreshold:
		n.send(user, models.EmailLowCredits, balance)
	}
}

func (n *Notifier) send(user *models.User, template string, balance int) {
	if n.sender == nil {
		logger.Log.Warnw("email sender not configured, skipping notification", "template", template, "user_id", user.ID)
		return
	}

	to := user.Email
	data := models.EmailData{Name: user.Name, Credits: balance, AppURL: n.appURL}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		defer cancel()

		if err := n.sender.Send(ctx, to, template, data); err != nil {
			logger.Log.Errorw("failed to send notification", "template", template, "to", to, "error", err)
		}
	}()
}

// Wait blocks until every started notification has finished.
func (n *Notifier) Wait() {
	n.wg.Wait()
}
