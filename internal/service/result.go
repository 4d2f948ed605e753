package service

import (
	apperrors "github.com/spec-kit/support-service/pkg/util"
)

// Result is the uniform operation outcome: {"success": true, ...payload}
// or {"success": false, "error": "...", "code": "..."}. Operations never
// return Go errors to their callers; every failure is folded into this
// shape.
type Result map[string]any

// Ok reports whether the operation succeeded.
func (r Result) Ok() bool {
	ok, _ := r["success"].(bool)
	return ok
}

// ErrorMessage returns the failure message, empty on success.
func (r Result) ErrorMessage() string {
	msg, _ := r["error"].(string)
	return msg
}

// Code returns the failure code, empty on success.
func (r Result) Code() string {
	code, _ := r["code"].(string)
	return code
}

func success(payload map[string]any) Result {
	result := Result{"success": true}
	for key, value := range payload {
		result[key] = value
	}
	return result
}

func failure(code, message string) Result {
	return Result{"success": false, "error": message, "code": code}
}

func failureFromError(err error) Result {
	domainErr := apperrors.ToDomainError(err)
	return failure(domainErr.Code, domainErr.Message)
}
