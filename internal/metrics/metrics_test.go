package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordLogin(t *testing.T) {
	success := testutil.ToFloat64(LoginAttempts.WithLabelValues(ResultSuccess))
	failure := testutil.ToFloat64(LoginAttempts.WithLabelValues(ResultFailure))

	RecordLogin(nil)
	RecordLogin(errors.New("bad credentials"))
	RecordLogin(errors.New("bad credentials"))

	assert.Equal(t, success+1, testutil.ToFloat64(LoginAttempts.WithLabelValues(ResultSuccess)))
	assert.Equal(t, failure+2, testutil.ToFloat64(LoginAttempts.WithLabelValues(ResultFailure)))
}

func TestRecordRegistration(t *testing.T) {
	before := testutil.ToFloat64(Registrations.WithLabelValues(ResultSuccess))

	RecordRegistration(nil)

	assert.Equal(t, before+1, testutil.ToFloat64(Registrations.WithLabelValues(ResultSuccess)))
}

func TestRecordTokens(t *testing.T) {
	issued := testutil.ToFloat64(TokensIssued)
	revoked := testutil.ToFloat64(TokensRevoked)

	RecordTokenIssued()
	RecordTokenRevoked()

	assert.Equal(t, issued+1, testutil.ToFloat64(TokensIssued))
	assert.Equal(t, revoked+1, testutil.ToFloat64(TokensRevoked))
}

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/authentication/login", "200"))

	RecordHTTPRequest("POST", "/authentication/login", "200", 15*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/authentication/login", "200")))
	assert.GreaterOrEqual(t, testutil.CollectAndCount(HTTPRequestDuration), 1)
}
