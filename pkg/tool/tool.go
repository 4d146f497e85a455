package tool

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/adrianliechti/wingman-speak/pkg/provider"
)

type Tool = provider.Tool

var (
	ErrInvalidTool = errors.New("invalid tool")
)

type Provider interface {
	Tools(ctx context.Context) ([]Tool, error)
	Execute(ctx context.Context, name string, parameters map[string]any) (any, error)
}

// String returns the string parameter key, or def if it is absent.
func String(parameters map[string]any, key string, def string) (string, error) {
	val, ok := parameters[key]

	if !ok || val == nil {
		return def, nil
	}

	s, ok := val.(string)

	if !ok {
		return "", fmt.Errorf("parameter %s must be a string", key)
	}

	return s, nil
}

// Number returns the numeric parameter key, or def if it is absent.
func Number(parameters map[string]any, key string, def float64) (float64, error) {
	val, ok := parameters[key]

	if !ok || val == nil {
		return def, nil
	}

	switch v := val.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	}

	return 0, fmt.Errorf("parameter %s must be a number", key)
}

// Integer returns the parameter key as a whole number, or def if it is absent.
func Integer(parameters map[string]any, key string, def int) (int, error) {
	val, err := Number(parameters, key, float64(def))

	if err != nil {
		return 0, err
	}

	if val != math.Trunc(val) {
		return 0, fmt.Errorf("parameter %s must be an integer", key)
	}

	return int(val), nil
}
