package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/relato/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestSubmissionID(t *testing.T) {
	attr := logger.SubmissionID("abc")
	require.Equal(t, "submission_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.Any())

	assert.True(t, logger.SubmissionID(nil).Equal(slog.Attr{}))
}

func TestStringAttrs(t *testing.T) {
	assert.Equal(t, slog.String("component", "form"), logger.Component("form"))
	assert.Equal(t, slog.String("event", "submit"), logger.Event("submit"))
	assert.Equal(t, slog.String("field", "cpf"), logger.Field("cpf"))
}

func TestFields(t *testing.T) {
	attr := logger.Fields("name", "cpf")
	require.Equal(t, "fields", attr.Key)
	assert.Equal(t, []string{"name", "cpf"}, attr.Value.Any())
}

func TestDuration(t *testing.T) {
	attr := logger.Duration(time.Second)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, time.Second, attr.Value.Any())
}
