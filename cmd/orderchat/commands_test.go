package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/orderchat/internal/config"
	"github.com/muurk/orderchat/internal/logging"
	"github.com/muurk/orderchat/internal/profile"
	"github.com/muurk/orderchat/internal/session"
)

func completeValues() map[profile.Field]string {
	return map[profile.Field]string{
		profile.FieldFirstName: "Ann",
		profile.FieldLastName:  "Lee",
		profile.FieldAddress:   "1 High St",
		profile.FieldPhone:     "5550100",
		profile.FieldGender:    "female",
	}
}

func newTestSession() *session.Session {
	return session.New(profile.NewSequenceGenerator("ORD-4821"))
}

func TestPlaceOrderSuccess(t *testing.T) {
	var out bytes.Buffer
	sess := newTestSession()

	err := placeOrder(&out, sess, completeValues(), "detailed")
	require.NoError(t, err)

	assert.Equal(t, "ORD-4821", sess.Profile().OrderID)
	assert.Contains(t, out.String(), "Order Created")
	assert.Contains(t, out.String(), "ORD-4821")
	assert.Contains(t, out.String(), "Ann Lee")
}

func TestPlaceOrderMissingField(t *testing.T) {
	var out bytes.Buffer
	values := completeValues()
	delete(values, profile.FieldPhone)
	sess := newTestSession()

	err := placeOrder(&out, sess, values, "detailed")

	require.Error(t, err)
	assert.True(t, errors.Is(err, errOrderRejected))
	assert.False(t, sess.Profile().HasOrder())
	assert.Contains(t, out.String(), profile.IncompleteMessage)
	assert.Contains(t, out.String(), "Missing: phone")
}

func TestPlaceOrderInvalidGender(t *testing.T) {
	var out bytes.Buffer
	values := completeValues()
	values[profile.FieldGender] = "unknown"

	err := placeOrder(&out, newTestSession(), values, "detailed")

	assert.ErrorIs(t, err, errOrderRejected)
	assert.Contains(t, out.String(), "Missing: gender")
}

func TestPlaceOrderJSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, placeOrder(&out, newTestSession(), completeValues(), "json"))

		var result orderResult
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.True(t, result.OK)
		assert.Equal(t, "ORD-4821", result.Profile.OrderID)
		assert.Equal(t, profile.GenderFemale, result.Profile.Gender)
		assert.Empty(t, result.Error)
	})

	t.Run("rejected", func(t *testing.T) {
		var out bytes.Buffer
		err := placeOrder(&out, newTestSession(), map[profile.Field]string{}, "json")
		assert.ErrorIs(t, err, errOrderRejected)

		var result orderResult
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.False(t, result.OK)
		assert.Equal(t, profile.IncompleteMessage, result.Error)
		assert.Equal(t, []string{"first-name", "last-name", "address", "phone", "gender"}, result.Missing)
		assert.Empty(t, result.Profile.OrderID)
	})
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	var out bytes.Buffer

	require.NoError(t, initConfig(&out, path, false))
	assert.True(t, strings.HasPrefix(out.String(), "Wrote default config"))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	err = initConfig(&out, path, false)
	require.Error(t, err, "existing file should not be overwritten")
	assert.Contains(t, err.Error(), "--force")

	require.NoError(t, os.WriteFile(path, []byte("version: 1\nlog_level: debug\n"), 0600))
	require.NoError(t, initConfig(&out, path, true))

	cfg, err = config.LoadFile(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.LogLevel)
}

func TestOrderFlagsCoverEveryField(t *testing.T) {
	for _, f := range profile.Fields {
		assert.NotNil(t, orderCmd.Flags().Lookup(f.String()), "missing flag for %s", f)
	}
}

func TestOrderLogsStayOutOfJSON(t *testing.T) {
	t.Setenv(logging.LogLevelEnvVar, "info")
	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "orderchat.log")

	require.NoError(t, initLogging(cfg))
	t.Cleanup(func() { logging.SetLogger(nil) })

	var out bytes.Buffer
	require.NoError(t, placeOrder(&out, newTestSession(), completeValues(), "json"))
	logging.Sync()

	var result orderResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result), "stdout must hold only JSON: %s", out.String())
	assert.Equal(t, "ORD-4821", result.Profile.OrderID)

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Order created")
}
