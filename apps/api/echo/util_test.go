package echoapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	echoapi "github.com/trezcool/shule/apps/api/echo"
	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/assessment"
	"github.com/trezcool/shule/core/mark"
	"github.com/trezcool/shule/core/subject"
	"github.com/trezcool/shule/core/user"
	emailsvc "github.com/trezcool/shule/services/email"
	logsvc "github.com/trezcool/shule/services/logger"
	smssvc "github.com/trezcool/shule/services/sms"
	dummydb "github.com/trezcool/shule/storage/database/dummy"
)

var (
	usrRepo  user.Repository
	subjRepo subject.Repository
	asmtRepo assessment.Repository
	markRepo mark.Repository
)

func setup(t *testing.T) echoapi.Server {
	t.Helper()

	conf := &core.Config{AppName: "Shule", TestMode: true}
	core.InitValidators()

	// set up DB & repos
	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("dummydb.Open() failed: %v", err)
	}
	usrRepo = dummydb.NewUserRepository(db)
	subjRepo = dummydb.NewSubjectRepository(db)
	asmtRepo = dummydb.NewAssessmentRepository(db)
	markRepo = dummydb.NewMarkRepository(db)

	// set up services
	mailSvc := emailsvc.NewConsoleServiceMock(conf)
	smsSvc := smssvc.NewConsoleServiceMock(conf)
	emailsvc.ClearSentMessages()
	smssvc.ClearSentTexts()
	logger := logsvc.NewNopLogger()

	subjSvc := subject.NewService(subjRepo)
	usrSvc := user.NewService(usrRepo, subjSvc, markRepo)
	asmtSvc := assessment.NewService(asmtRepo)
	markSvc := mark.NewService(markRepo, usrRepo, subjRepo, asmtRepo, mailSvc, smsSvc, logger)

	// set up server
	return echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:          conf,
			Logger:        logger,
			UserSvc:       usrSvc,
			SubjectSvc:    subjSvc,
			AssessmentSvc: asmtSvc,
			MarkSvc:       markSvc,
		},
	)
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
	extra    interface{}
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func itoa(id int) string {
	return strconv.Itoa(id)
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	t.Helper()
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
