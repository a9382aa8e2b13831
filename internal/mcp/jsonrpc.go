package mcp

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Error codes reported in-band on the wire.
const (
	CodeInvalidJSON    = "invalid-json"
	CodeMethodNotFound = "method-not-found"
)

var nullID = json.RawMessage("null")

// Request is one parsed input line. ID holds the raw JSON id so it can be
// echoed unchanged; Params is empty when missing or not an object.
type Request struct {
	ID     json.RawMessage
	Method string
	Params map[string]json.RawMessage

	// badMethod holds a "method" that was present but not a string, for
	// error messages. Method is empty whenever it is set.
	badMethod json.RawMessage
}

var errNotObject = errors.New("request must be a JSON object")

// UnmarshalJSON accepts any object; only the envelope must be well formed.
func (r *Request) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return errNotObject
		}
		return err
	}
	if fields == nil {
		return errNotObject
	}

	*r = Request{ID: validID(fields["id"])}

	if raw, ok := fields["method"]; ok && !bytes.Equal(raw, nullID) {
		if err := json.Unmarshal(raw, &r.Method); err != nil {
			r.badMethod = raw
		}
	}

	if raw, ok := fields["params"]; ok {
		var params map[string]json.RawMessage
		if err := json.Unmarshal(raw, &params); err == nil {
			r.Params = params
		}
	}
	if r.Params == nil {
		r.Params = map[string]json.RawMessage{}
	}
	return nil
}

// methodName renders the requested method for error messages.
func (r *Request) methodName() string {
	if len(r.badMethod) > 0 {
		return string(r.badMethod)
	}
	if r.Method == "" {
		return "null"
	}
	return r.Method
}

// validID re-encodes an id holding invalid UTF-8 so the bad bytes become
// U+FFFD; valid ids are kept byte-for-byte.
func validID(id json.RawMessage) json.RawMessage {
	if len(id) == 0 || utf8.Valid(id) {
		return id
	}
	dec := json.NewDecoder(bytes.NewReader(id))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return id
	}
	out, err := json.Marshal(v)
	if err != nil {
		return id
	}
	return out
}

// Response carries exactly one of Result or Error. A nil ID is omitted,
// which only happens for lines that could not be parsed.
type Response struct {
	ID     json.RawMessage `json:"id,omitempty"`
	Result *Result         `json:"result,omitempty"`
	Error  *Error          `json:"error,omitempty"`
}

type Result struct {
	Message string `json:"message"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ReadyEvent is announced once before any response.
type ReadyEvent struct {
	Type    string `json:"type"`
	Version string `json:"version"`
}

func newReadyEvent(version string) ReadyEvent {
	return ReadyEvent{Type: "ready", Version: version}
}

func invalidJSON(err error) *Response {
	return &Response{Error: &Error{
		Code:    CodeInvalidJSON,
		Message: fmt.Sprintf("Failed to parse JSON: %v", err),
	}}
}

// readLine reads one newline-terminated line. A final line without a
// newline is returned with a nil error; io.EOF is only returned once no
// data is left.
func readLine(r *bufio.Reader) ([]byte, error) {
	line, err := r.ReadBytes('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return line, nil
		}
		return nil, err
	}
	return line, nil
}

// writeNDJSON writes v as a single JSON line and flushes it.
func writeNDJSON(w *bufio.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	// Encode terminates the document with exactly one newline.
	if err := enc.Encode(v); err != nil {
		return err
	}
	return w.Flush()
}
