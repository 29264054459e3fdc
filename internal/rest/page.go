package rest

import "encoding/json"

// pageEnvelope is the DRF-style paginated shape: {"results": [...], "next": url}.
type pageEnvelope struct {
	Results json.RawMessage `json:"results"`
	Next    *string         `json:"next"`
}

// DecodePage resolves the two list shapes the backend emits — a paginated
// envelope or a bare array — exactly once, so call sites never re-guess.
// It returns the raw item array and whether another page exists.
func DecodePage(raw json.RawMessage) (items json.RawMessage, hasMore bool, err error) {
	var env pageEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Results != nil {
		return env.Results, env.Next != nil && *env.Next != "", nil
	}

	// bare array
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		return nil, false, &Error{Kind: KindDecode, Message: "unexpected list response", Err: err}
	}
	return raw, false, nil
}
