package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fahiz07/Travel-Tracker/internal/session"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestIssueAndParse(t *testing.T) {
	m, err := session.NewManager(testSecret, time.Hour)
	require.NoError(t, err)

	token, err := m.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestParse_TamperedToken(t *testing.T) {
	m, err := session.NewManager(testSecret, time.Hour)
	require.NoError(t, err)

	token, err := m.Issue(42)
	require.NoError(t, err)

	_, err = m.Parse(token + "x")
	assert.ErrorIs(t, err, session.ErrInvalidToken)

	_, err = m.Parse("not-a-token")
	assert.ErrorIs(t, err, session.ErrInvalidToken)
}

func TestParse_WrongSecret(t *testing.T) {
	m1, err := session.NewManager(testSecret, time.Hour)
	require.NoError(t, err)
	m2, err := session.NewManager("another-secret-value-entirely", time.Hour)
	require.NoError(t, err)

	token, err := m1.Issue(7)
	require.NoError(t, err)

	_, err = m2.Parse(token)
	assert.ErrorIs(t, err, session.ErrInvalidToken)
}

func TestParse_Expired(t *testing.T) {
	m, err := session.NewManager(testSecret, time.Millisecond)
	require.NoError(t, err)

	token, err := m.Issue(7)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, session.ErrInvalidToken)
}

func TestNewManager_Invalid(t *testing.T) {
	_, err := session.NewManager("short", time.Hour)
	assert.Error(t, err)

	_, err = session.NewManager(testSecret, 0)
	assert.Error(t, err)
}
