package validation_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/adapter/http/dto"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/adapter/http/validation"
)

func decode(t *testing.T, body string) (dto.UpdateTaskRequest, map[string]json.RawMessage) {
	t.Helper()

	var req dto.UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return req, raw
}

func TestBuildTaskUpdate_EmptyPayloadRejected(t *testing.T) {
	req, raw := decode(t, `{}`)
	_, err := validation.BuildTaskUpdate(req, raw)
	assert.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
}

func TestBuildTaskUpdate_TitleTrimmedAndRequired(t *testing.T) {
	req, raw := decode(t, `{"title": "  買い出し  "}`)
	update, err := validation.BuildTaskUpdate(req, raw)
	require.NoError(t, err)
	require.NotNil(t, update.Title)
	assert.Equal(t, "買い出し", *update.Title)

	req, raw = decode(t, `{"title": "   "}`)
	_, err = validation.BuildTaskUpdate(req, raw)
	assert.ErrorIs(t, err, validation.ErrInvalidTaskPayload)

	req, raw = decode(t, `{"title": null}`)
	_, err = validation.BuildTaskUpdate(req, raw)
	assert.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
}

func TestBuildTaskUpdate_DateValueAndClear(t *testing.T) {
	req, raw := decode(t, `{"date": "2024-06-02"}`)
	update, err := validation.BuildTaskUpdate(req, raw)
	require.NoError(t, err)
	require.NotNil(t, update.Date)
	assert.Equal(t, "2024-06-02", *update.Date)

	// Both null and the empty string clear the date.
	for _, body := range []string{`{"date": null}`, `{"date": ""}`} {
		req, raw = decode(t, body)
		update, err = validation.BuildTaskUpdate(req, raw)
		require.NoError(t, err, body)
		require.NotNil(t, update.Date, body)
		assert.Empty(t, *update.Date, body)
	}
}

func TestBuildTaskUpdate_BadDateRejected(t *testing.T) {
	req, raw := decode(t, `{"date": "June 2nd"}`)
	_, err := validation.BuildTaskUpdate(req, raw)
	assert.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
}

func TestBuildTaskUpdate_TimeValueAndClear(t *testing.T) {
	req, raw := decode(t, `{"time": "10:00"}`)
	update, err := validation.BuildTaskUpdate(req, raw)
	require.NoError(t, err)
	require.NotNil(t, update.Time)
	assert.Equal(t, "10:00", *update.Time)

	req, raw = decode(t, `{"time": null}`)
	update, err = validation.BuildTaskUpdate(req, raw)
	require.NoError(t, err)
	require.NotNil(t, update.Time)
	assert.Empty(t, *update.Time)
}

func TestBuildTaskUpdate_AbsentFieldsStayNil(t *testing.T) {
	req, raw := decode(t, `{"category": "仕事"}`)
	update, err := validation.BuildTaskUpdate(req, raw)
	require.NoError(t, err)
	assert.Nil(t, update.Title)
	assert.Nil(t, update.Date)
	assert.Nil(t, update.Time)
	require.NotNil(t, update.Category)
	assert.Equal(t, "仕事", *update.Category)
}
