package smssvc

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/trezcool/shule/core"
)

var (
	SentTexts = make([]core.TextMessage, 0)
	mu        sync.Mutex
)

type consoleService struct {
	sender        string
	disableOutput bool
}

var _ core.SMSService = (*consoleService)(nil)

func NewConsoleService(conf *core.Config) core.SMSService {
	return &consoleService{sender: conf.SMS.Sender}
}

func (svc consoleService) SendTexts(texts ...*core.TextMessage) {
	for _, txt := range texts {
		go svc.sendText(txt)
	}
}

func (svc consoleService) sendText(txt *core.TextMessage) {
	if txt.HasRecipient() && txt.HasContent() {
		svc.send(*txt)
		mu.Lock()
		SentTexts = append(SentTexts, *txt)
		mu.Unlock()
	}
}

func (svc consoleService) send(txt core.TextMessage) {
	body := new(strings.Builder)
	_, _ = fmt.Fprintf(body, "From: %s\r\n", svc.sender)
	_, _ = fmt.Fprintf(body, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	_, _ = fmt.Fprintf(body, "To: %s\r\n", txt.To)
	_, _ = fmt.Fprint(body, "\r\n")
	_, _ = fmt.Fprintf(body, "%s\r\n", txt.Body)

	if !svc.disableOutput {
		log.Println(body.String())
	}
}

type consoleServiceMock struct {
	consoleService
}

func NewConsoleServiceMock(conf *core.Config) core.SMSService {
	return &consoleServiceMock{
		consoleService: consoleService{
			sender:        conf.SMS.Sender,
			disableOutput: true,
		},
	}
}

func (svc *consoleServiceMock) SendTexts(texts ...*core.TextMessage) {
	for _, txt := range texts {
		// run synchronously
		svc.sendText(txt)
	}
}

// ClearSentTexts resets the sent log between test cases.
func ClearSentTexts() {
	mu.Lock()
	SentTexts = SentTexts[:0]
	mu.Unlock()
}

// GetSentTexts snapshots the sent log.
func GetSentTexts() []core.TextMessage {
	mu.Lock()
	defer mu.Unlock()
	texts := make([]core.TextMessage, len(SentTexts))
	copy(texts, SentTexts)
	return texts
}
