package smssvc

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sendgrid/rest"

	"github.com/trezcool/shule/core"
)

// gatewayService delivers texts through a JSON HTTP SMS gateway.
type gatewayService struct {
	url    string
	key    string
	sender string
	client *rest.Client
	logger core.Logger
}

var _ core.SMSService = (*gatewayService)(nil)

func NewGatewayService(conf *core.Config, logger core.Logger) core.SMSService {
	return &gatewayService{
		url:    conf.SMS.GatewayURL,
		key:    conf.SMS.APIKey,
		sender: conf.SMS.Sender,
		client: &rest.Client{HTTPClient: &http.Client{Timeout: conf.Notification.SendTimeout}},
		logger: logger,
	}
}

func (svc gatewayService) SendTexts(texts ...*core.TextMessage) {
	for _, txt := range texts {
		txt := txt
		go func() {
			if txt.HasRecipient() && txt.HasContent() {
				svc.send(*txt)
			}
		}()
	}
}

func (svc gatewayService) send(txt core.TextMessage) {
	body, err := json.Marshal(map[string]string{
		"from": svc.sender,
		"to":   txt.To,
		"text": txt.Body,
	})
	if err != nil {
		svc.logger.Error(fmt.Sprintf("encoding sms: %v", err), err)
		return
	}

	req := rest.Request{
		Method:  rest.Post,
		BaseURL: svc.url,
		Headers: map[string]string{
			"Authorization": "Bearer " + svc.key,
			"Content-Type":  "application/json",
		},
		Body: body,
	}

	res, err := svc.client.Send(req)
	if err != nil {
		svc.logger.Error(fmt.Sprintf("sending sms: %v", err), err)
	} else if res.StatusCode >= http.StatusBadRequest {
		svc.logger.Error(fmt.Sprintf("sending sms - status: %d - body: %s", res.StatusCode, res.Body))
	}
	// no retries: delivery is best-effort
}
