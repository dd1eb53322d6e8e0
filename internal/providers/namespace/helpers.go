package namespace

import (
	"fmt"
	"strconv"

	ns "github.com/GriffinCanCode/AgentOS/vfs/internal/namespace"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/types"
)

// KindInvalidParams marks failures caused by missing or mistyped parameters.
const KindInvalidParams = "invalid_params"

type paramError struct {
	msg string
}

func (e *paramError) Error() string { return e.msg }

func paramErrorf(format string, args ...interface{}) error {
	return &paramError{msg: fmt.Sprintf(format, args...)}
}

// requiredString returns a non-empty string parameter.
func requiredString(params map[string]interface{}, key string) (string, error) {
	s, err := presentString(params, key)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", paramErrorf("%s parameter required", key)
	}
	return s, nil
}

// presentString returns a string parameter that must be present but may be empty.
func presentString(params map[string]interface{}, key string) (string, error) {
	v, ok := params[key]
	if !ok || v == nil {
		return "", paramErrorf("%s parameter required", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", paramErrorf("%s must be a string", key)
	}
	return s, nil
}

func optionalString(params map[string]interface{}, key, fallback string) (string, error) {
	v, ok := params[key]
	if !ok || v == nil {
		return fallback, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", paramErrorf("%s must be a string", key)
	}
	return s, nil
}

// optionalBool accepts JSON booleans and the strings strconv.ParseBool understands.
func optionalBool(params map[string]interface{}, key string) (bool, error) {
	switch v := params[key].(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, paramErrorf("%s must be a boolean", key)
		}
		return b, nil
	default:
		return false, paramErrorf("%s must be a boolean", key)
	}
}

func success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// mutated reports success and surfaces a failed save without failing the call.
func mutated(e *ns.Engine, data map[string]interface{}) (*types.Result, error) {
	if err := e.LastSaveError(); err != nil {
		data["persist_error"] = err.Error()
	}
	return success(data)
}

func failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

func failureWithKind(err error, kind string) (*types.Result, error) {
	msg := err.Error()
	result := &types.Result{Success: false, Error: &msg}
	if kind != "" {
		result.Data = map[string]interface{}{"kind": kind}
	}
	return result, nil
}

func kindOf(err error) string {
	if _, ok := err.(*paramError); ok {
		return KindInvalidParams
	}
	return string(ns.KindOf(err))
}
