package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"testing"

	"github.com/finsight/backend/internal/config"
	v1 "github.com/finsight/backend/internal/controllers/v1"
	"github.com/finsight/backend/internal/httperror"
	"github.com/finsight/backend/internal/router"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// BaseURL is the API URL used by the test router.
const BaseURL = "http://example.com"

// Request is a helper method to simplify making a HTTP request for tests.
//
// body can be a string, which is sent as is, or any other value, which
// is marshalled to JSON. nil sends an empty body.
func Request(t *testing.T, db *gorm.DB, method, target string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var byteBuffer *bytes.Buffer

	switch {
	case body == nil:
		byteBuffer = bytes.NewBuffer(nil)
	case reflect.TypeOf(body).Kind() == reflect.String:
		byteBuffer = bytes.NewBufferString(body.(string))
	default:
		byteStr, err := json.Marshal(body)
		if err != nil {
			assert.FailNow(t, "Request body could not be marshalled", err)
		}
		byteBuffer = bytes.NewBuffer(byteStr)
	}

	apiURL, _ := url.Parse(BaseURL)
	cfg := config.Config{APIURL: apiURL, GinMode: "test"}

	r, teardown, err := router.Config(cfg)
	if err != nil {
		assert.FailNow(t, "Router could not be initialized", err)
	}
	defer teardown()

	router.AttachRoutes(cfg, v1.New(db), r.Group("/"))

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, target, byteBuffer)
	req.Header.Set("Content-Type", "application/json")

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

func AssertHTTPStatus(t *testing.T, expected int, r *httptest.ResponseRecorder) {
	assert.Equal(t, expected, r.Code, "HTTP status is wrong. Response body: %s", r.Body.String())
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.NewDecoder(r.Body).Decode(target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v'", r.Body, reflect.TypeOf(target), err)
	}
}

// DecodeError returns the error message of an error response body.
func DecodeError(t *testing.T, s []byte) string {
	var r httperror.Error
	if err := json.Unmarshal(s, &r); err != nil {
		assert.Fail(t, "Not valid JSON!", "%s", s)
	}

	return r.Message
}
