package models

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

var (
	ErrNoJSONObject = errors.New("no JSON object in model output")
	ErrEmptyOutput  = errors.New("model output is empty")
)

// ParseCompanyProposal reads the model's answer to a company prompt.
// Markdown fences and chatter around the object are tolerated, and each field
// is coerced on its own: a field of the wrong shape comes back empty instead
// of failing the whole proposal. Only output with no decodable object errors.
func ParseCompanyProposal(raw string) (*CompanyProposal, error) {
	obj, err := extractObject(raw)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(obj), &fields); err != nil {
		return nil, err
	}
	return &CompanyProposal{
		Activity:      coerceText(fields["activity"]),
		CreationYear:  CoerceYear(fields["creationYear"]),
		ParentCompany: coerceText(fields["parentCompany"]),
		MarketScope:   coerceText(fields["marketScope"]),
	}, nil
}

// ParseImpactDescription trims the model's free-text answer.
func ParseImpactDescription(raw string) (string, error) {
	text := strings.TrimSpace(stripFences(raw))
	if text == "" {
		return "", ErrEmptyOutput
	}
	return text, nil
}

// CoerceYear reads a year the way a lenient integer parse would: numbers are
// truncated, strings contribute their leading integer ("1987 (est.)" is
// 1987), and anything else is nil. It never fails.
func CoerceYear(raw json.RawMessage) *int {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) || math.Abs(t) > math.MaxInt32 {
			return nil
		}
		n := int(math.Trunc(t))
		return &n
	case string:
		return leadingInt(t)
	default:
		return nil
	}
}

func leadingInt(s string) *int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return nil
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}
	return &n
}

func coerceText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "null") || strings.EqualFold(s, "unknown") {
		return ""
	}
	return s
}

func extractObject(raw string) (string, error) {
	text := stripFences(raw)
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end < start {
		return "", ErrNoJSONObject
	}
	return text[start : end+1], nil
}

func stripFences(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[nl+1:]
	} else {
		text = strings.TrimPrefix(text, "json")
	}
	return strings.TrimSuffix(strings.TrimSpace(text), "```")
}
