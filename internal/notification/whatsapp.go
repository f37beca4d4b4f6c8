package notification

import (
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type WhatsAppSender struct {
	client *twilio.RestClient
	from   string
}

func NewWhatsAppSender(accountSID, authToken, fromNumber string) *WhatsAppSender {
	return &WhatsAppSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: fromNumber,
	}
}

func (s *WhatsAppSender) Send(msg Message) error {
	to := msg.To
	if !strings.HasPrefix(to, "whatsapp:") {
		to = "whatsapp:" + to
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom("whatsapp:" + s.from)
	params.SetBody(msg.Body)

	_, err := s.client.Api.CreateMessage(params)
	return err
}
