package calendar

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Normalization failure taxonomy. All three are terminal for the invocation
// that produced them; no partial document is ever returned.
var (
	// ErrAgentCallFailed marks a transport-level failure reported by the
	// gateway itself.
	ErrAgentCallFailed = errors.New("agent call failed")
	// ErrMalformedPayload marks a string payload that is not parseable JSON.
	ErrMalformedPayload = errors.New("malformed agent payload")
	// ErrUnrecognizedShape marks a payload that lacks the required
	// document shape after all unwrap attempts.
	ErrUnrecognizedShape = errors.New("unrecognized calendar shape")
)

// NormalizeDocument turns a raw agent envelope into a validated Document.
//
// The agent wraps its output in zero, one, or two levels of indirection, and
// any level may arrive as a JSON string needing re-parsing. The unwrap order
// is fixed: payload field, nested "result" field, then a nested
// "response.result" field, re-parsing strings at each step. The candidate is
// accepted only once ValidDocumentShape confirms a summary object and a
// weeks sequence; leaf fields inside are not deep-validated.
func NormalizeDocument(env Envelope) (Document, error) {
	data, err := unwrapPayload(env)
	if err != nil {
		return Document{}, err
	}

	m, ok := data.(map[string]any)
	if !ok || !ValidDocumentShape(m) {
		return Document{}, ErrUnrecognizedShape
	}

	var doc Document
	decodeLoose(m, &doc)
	return doc, nil
}

// NormalizeWeek runs the same unwrap sequence but accepts either a weeks
// sequence (selecting the unit whose weekNumber matches, falling back to the
// first unit) or a bare week object carrying weekNumber and posts.
func NormalizeWeek(env Envelope, weekNumber int) (Week, error) {
	data, err := unwrapPayload(env)
	if err != nil {
		return Week{}, err
	}

	m, ok := data.(map[string]any)
	if !ok {
		return Week{}, ErrUnrecognizedShape
	}

	if weeks, ok := m["weeks"].([]any); ok && len(weeks) > 0 {
		candidate := weeks[0]
		for _, w := range weeks {
			wm, ok := w.(map[string]any)
			if !ok {
				continue
			}
			if n, ok := numberField(wm, "weekNumber"); ok && n == weekNumber {
				candidate = w
				break
			}
		}
		var week Week
		decodeLoose(candidate, &week)
		return week, nil
	}

	if _, hasNum := m["weekNumber"]; hasNum {
		if _, isSeq := m["posts"].([]any); isSeq {
			var week Week
			decodeLoose(m, &week)
			return week, nil
		}
	}

	return Week{}, ErrUnrecognizedShape
}

// unwrapPayload applies the fixed unwrap/parse sequence shared by both
// normalization paths and returns the shape candidate.
func unwrapPayload(env Envelope) (any, error) {
	if !env.Success {
		if env.Error != "" {
			return nil, fmt.Errorf("%w: %s", ErrAgentCallFailed, env.Error)
		}
		return nil, ErrAgentCallFailed
	}

	// Level 0: the payload is the "result" field of the response object.
	var resp map[string]any
	if len(env.Response) > 0 {
		if err := json.Unmarshal(env.Response, &resp); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
	}
	data := resp["result"]

	data, err := parseIfString(data)
	if err != nil {
		return nil, err
	}

	// Level 1: the agent sometimes wraps its own output in another
	// "result" field.
	if m, ok := data.(map[string]any); ok {
		switch m["result"].(type) {
		case map[string]any, []any:
			data = m["result"]
		}
	}

	// Level 2: still no summary or weeks field; try a "response.result"
	// envelope, which again may be a string.
	if m, ok := data.(map[string]any); ok {
		_, hasSummary := m["summary"]
		_, hasWeeks := m["weeks"]
		if !hasSummary && !hasWeeks {
			if inner, ok := m["response"].(map[string]any); ok {
				if r, ok := inner["result"]; ok {
					data, err = parseIfString(r)
					if err != nil {
						return nil, err
					}
				}
			}
		}
	}

	return data, nil
}

// ValidDocumentShape reports whether the candidate carries a summary-shaped
// object and a weeks sequence. Elements of weeks are not individually
// validated here.
func ValidDocumentShape(m map[string]any) bool {
	if _, ok := m["summary"].(map[string]any); !ok {
		return false
	}
	if _, ok := m["weeks"].([]any); !ok {
		return false
	}
	return true
}

// parseIfString re-parses string payloads into structured data.
func parseIfString(data any) (any, error) {
	s, ok := data.(string)
	if !ok {
		return data, nil
	}
	var parsed any
	if err := json.Unmarshal([]byte(s), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return parsed, nil
}

// decodeLoose maps a candidate value onto a typed struct. Leaf-level type
// mismatches are tolerated and decode to zero values; the document shape has
// already been validated by the caller.
func decodeLoose(candidate any, v any) {
	b, err := json.Marshal(candidate)
	if err != nil {
		return
	}
	// json.Unmarshal keeps decoding past field type errors, which gives
	// the absence-tolerant leaf behavior the display layer expects.
	_ = json.Unmarshal(b, v)
}

// numberField reads an integer-valued field from a decoded JSON object.
func numberField(m map[string]any, key string) (int, bool) {
	f, ok := m[key].(float64)
	if !ok {
		return 0, false
	}
	return int(f), true
}
