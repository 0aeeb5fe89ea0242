package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/adapter/http/dto"
	"github.com/shunsuke-ai1226/simple-todo-list-ai/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

var (
	dateFormat = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeFormat = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// BuildTaskUpdate turns a partial-update request into a domain update.
// The raw message map distinguishes absent fields from explicit nulls:
// a null date or time clears the field, an absent one leaves it alone.
// Titles may not be cleared; the persisted title must stay non-empty.
func BuildTaskUpdate(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.TaskUpdate, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.TaskUpdate{}, ErrInvalidTaskPayload
	}

	var update domain.TaskUpdate

	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.TaskUpdate{}, ErrInvalidTaskPayload
		}
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.TaskUpdate{}, ErrInvalidTaskPayload
		}
		update.Title = &value
	}

	if hasJSONField(raw, "category") {
		if req.Category == nil || *req.Category == "" {
			return domain.TaskUpdate{}, ErrInvalidTaskPayload
		}
		update.Category = req.Category
	}

	if hasJSONField(raw, "date") {
		value, err := clearableValue(raw["date"], req.Date, dateFormat)
		if err != nil {
			return domain.TaskUpdate{}, err
		}
		update.Date = &value
	}

	if hasJSONField(raw, "time") {
		value, err := clearableValue(raw["time"], req.Time, timeFormat)
		if err != nil {
			return domain.TaskUpdate{}, err
		}
		update.Time = &value
	}

	return update, nil
}

// clearableValue resolves a field that accepts null, "" (both clear) or a
// value matching format.
func clearableValue(rawValue json.RawMessage, bound *string, format *regexp.Regexp) (string, error) {
	if isJSONNull(rawValue) {
		return "", nil
	}
	if bound == nil {
		return "", ErrInvalidTaskPayload
	}
	if *bound == "" {
		return "", nil
	}
	if !format.MatchString(*bound) {
		return "", ErrInvalidTaskPayload
	}
	return *bound, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "category") ||
		hasJSONField(raw, "date") ||
		hasJSONField(raw, "time")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
