package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestLoginOutcomesAreCountedSeparately(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.Login(LoginSuccess)
	m.Login(LoginFailure)
	m.Login(LoginFailure)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Logins.WithLabelValues(LoginSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Logins.WithLabelValues(LoginFailure)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Logins.WithLabelValues(LoginInvalid)))
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := New(prometheus.NewRegistry())
	b := New(prometheus.NewRegistry())

	a.EntriesCreated.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.EntriesCreated))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.EntriesCreated))
}
