package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"bitbucket.org/crgw/tourplan-hub/internal/schema"
	"bitbucket.org/crgw/tourplan-hub/internal/tools/client"
	"github.com/rs/zerolog"
)

type Mailer struct {
	configuration schema.MailerConfiguration
	httpClient    *http.Client
}

type message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

func New(configuration schema.MailerConfiguration, logger *zerolog.Logger, optionFuncs ...client.OptionFunc) (*Mailer, error) {
	options, err := client.NewOptions(optionFuncs...)
	if err != nil {
		return nil, err
	}

	return &Mailer{
		configuration: configuration,
		httpClient: &http.Client{
			Timeout:   options.Timeout(),
			Transport: client.NewOutgoingLoggerRoundTripper(logger, "mailer"),
		},
	}, nil
}

// NotifyStaff sends a plain-text message to the configured staff address.
func (m *Mailer) NotifyStaff(ctx context.Context, subject string, text string) error {
	body, err := json.Marshal(message{
		From:    m.configuration.FromAddress,
		To:      m.configuration.StaffAddress,
		Subject: subject,
		Text:    text,
	})
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, m.configuration.ApiUrl+"/messages", bytes.NewBuffer(body))
	if err != nil {
		return err
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+m.configuration.ApiKey)

	response, err := m.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode >= 300 {
		return fmt.Errorf("mailer responded with status %d", response.StatusCode)
	}

	return nil
}
