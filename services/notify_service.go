// services/notify_service.go
package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// NotifyService sends a best-effort "invoice ready" message to the
// customer over Twilio. Without credentials in the environment it is a
// no-op, and a send failure never affects the invoice itself.
type NotifyService struct {
	client *twilio.RestClient
}

func NewNotifyService() *NotifyService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	if accountSid == "" || authToken == "" {
		log.Info().Msg("Twilio credentials not set, invoice notifications disabled")
		return &NotifyService{}
	}

	return &NotifyService{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// InvoiceReady notifies the customer that their invoice was generated.
// Phones in E.164 format go out over WhatsApp, everything else over SMS.
func (s *NotifyService) InvoiceReady(customerName, phone, invoiceNumber string, total float64) {
	if s.client == nil || phone == "" {
		return
	}

	message := fmt.Sprintf("Hi %s, your invoice %s for $%.2f is ready. Thank you for your purchase!",
		customerName, invoiceNumber, total)

	to := phone
	from := os.Getenv("TWILIO_PHONE_NUMBER")
	if strings.HasPrefix(phone, "+") {
		to = "whatsapp:" + phone
		from = "whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Warn().Err(err).Str("phone", phone).Msg("failed to send invoice notification")
		return
	}
	if resp.Sid != nil {
		log.Info().Str("phone", phone).Str("sid", *resp.Sid).Msg("invoice notification sent")
	} else {
		log.Info().Str("phone", phone).Msg("invoice notification sent, no SID returned")
	}
}
