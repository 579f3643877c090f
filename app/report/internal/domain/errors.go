package domain

import (
	"github.com/go-kratos/kratos/v2/errors"
)

const (
	ReasonValidation            = "VALIDATION"
	ReasonUpstreamConfiguration = "UPSTREAM_CONFIGURATION"
	ReasonGeneration            = "GENERATION_FAILED"
	ReasonRender                = "RENDER_FAILED"
	ReasonUploadRejected        = "UPLOAD_REJECTED"
	ReasonMethodNotAllowed      = "METHOD_NOT_ALLOWED"
)

// ErrMissingFields 必填字段缺失，状态码为 500
func ErrMissingFields() *errors.Error {
	return errors.InternalServer(ReasonValidation, "Missing required fields")
}

func ErrInvalidAPIKey(cause error) *errors.Error {
	return errors.InternalServer(ReasonUpstreamConfiguration,
		"Invalid Groq API key. Please check your .env configuration.").WithCause(cause)
}

func ErrGeneration(cause error) *errors.Error {
	return errors.InternalServer(ReasonGeneration, "Failed to generate report").WithCause(cause)
}

func ErrRender(message string, cause error) *errors.Error {
	return errors.InternalServer(ReasonRender, message).WithCause(cause)
}

// ErrUploadRejected 上传的文件类型、大小或数量不符合要求
func ErrUploadRejected(message string) *errors.Error {
	return errors.InternalServer(ReasonUploadRejected, message)
}

func ErrMethodNotAllowed() *errors.Error {
	return errors.New(405, ReasonMethodNotAllowed, "Method not allowed")
}
