package mail

import (
	"fmt"
	"time"

	mailgw "todo-api/internal/domain/gateway/mail"
	pkghttp "todo-api/pkg/http"
)

const dateLayout = "2006-01-02"

// ResendSender delivers reminder emails through the Resend HTTP API,
// implementing the domain mail.Sender interface.
type ResendSender struct {
	client *pkghttp.Client
	from   string
	appURL string
}

var _ mailgw.Sender = (*ResendSender)(nil)

func NewResendSender(baseURL string, apiKey string, from string, appURL string) *ResendSender {
	client := pkghttp.NewHttpClient(baseURL, pkghttp.ClientOptions{
		DefaultHeaders: map[string]string{
			"Authorization": "Bearer " + apiKey,
		},
		ConnectionTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
	})

	return &ResendSender{
		client: client,
		from:   from,
		appURL: appURL,
	}
}

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendEmailResponse struct {
	ID string `json:"id"`
}

type sendEmailError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (sender *ResendSender) SendReminder(recipient string, todoText string, dueDate time.Time) error {
	body := sendEmailRequest{
		From:    sender.from,
		To:      []string{recipient},
		Subject: fmt.Sprintf("Reminder: '%s' due tomorrow!", todoText),
		HTML: fmt.Sprintf(
			"<h2>⏰ Todo Reminder</h2>"+
				"<p><strong>%s</strong> is due on %s.</p>"+
				"<p><a href=%q>Open App</a></p>"+
				"<p>Stay productive! 🚀</p>",
			todoText, dueDate.Format(dateLayout), sender.appURL),
	}

	var success sendEmailResponse
	var errorResp sendEmailError
	_, _, status, err := sender.client.Post("/emails", nil, nil, body, &success, &errorResp)
	if err != nil {
		if errorResp.Message != "" {
			return fmt.Errorf("resend delivery failed (status %d): %s", status, errorResp.Message)
		}
		return fmt.Errorf("resend delivery failed: %w", err)
	}

	return nil
}
