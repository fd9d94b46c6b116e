package facades

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/pixelift/pixelift-api/internal/logger"
	"github.com/pixelift/pixelift-api/internal/models"
	"github.com/resend/resend-go/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

var emailTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

var emailSubjects = map[string]string{
	models.EmailFirstUpload:     "Your first Pixelift image is ready",
	models.EmailLowCredits:      "You are running low on Pixelift credits",
	models.EmailCreditsDepleted: "You are out of Pixelift credits",
}

// ResendSender is the part of the Resend client used to send mail.
type ResendSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// EmailResendFacade renders templated emails and sends them through Resend.
type EmailResendFacade struct {
	sender ResendSender
	from   string
}

func NewEmailResendFacade(sender ResendSender, from string) *EmailResendFacade {
	return &EmailResendFacade{sender: sender, from: from}
}

// Send renders the named template with data and mails it to the recipient.
func (f *EmailResendFacade) Send(ctx context.Context, to, name string, data models.EmailData) error {
	subject, ok := emailSubjects[name]
	if !ok {
		return fmt.Errorf("unknown email template %q", name)
	}

	var body bytes.Buffer
	if err := emailTemplates.ExecuteTemplate(&body, name+".html", data); err != nil {
		return fmt.Errorf("rendering %s email: %w", name, err)
	}

	resp, err := f.sender.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    f.from,
		To:      []string{to},
		Subject: subject,
		Html:    body.String(),
	})
	if err != nil {
		logger.Log.Errorw("failed to send email", "template", name, "to", to, "error", err)
		return fmt.Errorf("sending %s email: %w", name, err)
	}

	logger.Log.Infow("email sent", "template", name, "to", to, "id", resp.Id)
	return nil
}
