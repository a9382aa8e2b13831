package mcp

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Method is the closed set of operations the server understands.
type Method int

const (
	MethodUnknown Method = iota
	MethodPing
	MethodHello
)

func (m Method) String() string {
	switch m {
	case MethodPing:
		return "ping"
	case MethodHello:
		return "hello"
	default:
		return "unknown"
	}
}

// ParseMethod matches name exactly; anything else is MethodUnknown.
func ParseMethod(name string) Method {
	switch name {
	case "ping":
		return MethodPing
	case "hello":
		return MethodHello
	default:
		return MethodUnknown
	}
}

const defaultName = "world"

// Handle maps a request to its response. It has no side effects and keeps
// no state, so equal requests always produce equal responses. A nil
// response means nothing should be written.
func Handle(req *Request) *Response {
	id := req.ID
	if len(id) == 0 {
		id = nullID
	}

	switch ParseMethod(req.Method) {
	case MethodPing:
		return &Response{ID: id, Result: &Result{Message: "pong"}}
	case MethodHello:
		name := greetingName(req.Params["name"])
		return &Response{ID: id, Result: &Result{Message: fmt.Sprintf("Hello, %s!", name)}}
	default:
		return &Response{ID: id, Error: &Error{
			Code:    CodeMethodNotFound,
			Message: fmt.Sprintf("Unknown method: %s", req.methodName()),
		}}
	}
}

// greetingName returns the name to greet. Missing and falsy values
// (null, "", false, 0) fall back to defaultName; strings are used verbatim
// and other values by their JSON text.
func greetingName(raw json.RawMessage) string {
	if len(raw) == 0 {
		return defaultName
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return defaultName
	}

	switch val := v.(type) {
	case nil:
		return defaultName
	case string:
		if val == "" {
			return defaultName
		}
		return val
	case bool:
		if !val {
			return defaultName
		}
	case float64:
		if val == 0 {
			return defaultName
		}
	case []any:
		if len(val) == 0 {
			return defaultName
		}
	case map[string]any:
		if len(val) == 0 {
			return defaultName
		}
	}
	return strings.TrimSpace(string(raw))
}
