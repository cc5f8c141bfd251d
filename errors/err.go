package errors

import (
	"fmt"
)

type ErrCode int

type ConfErr struct {
	Code ErrCode
	Msg  string
}

func (e *ConfErr) Error() string {
	return fmt.Sprintf("[%d] %s", e.Code, e.Msg)
}

func new(code ErrCode, msg string) *ConfErr {
	return &ConfErr{
		Code: code,
		Msg:  msg,
	}
}

const (
	notFound ErrCode = iota
	invalid
	probeFailed
	parseFailed
	notSupported
)

// Pre-defined errors.
var (
	SDKNotFound     = new(notFound, "no qualifying SDK installation found")
	ArtifactMissing = new(notFound, "required library artifact not found")
	UnknownArch     = new(invalid, "unknown CPU architecture")
	UnsupportedArch = new(notSupported, "unsupported CPU architecture for platform")
	ProbeFailed     = new(probeFailed, "compiler probe failed")
	ErrOutputParse  = new(parseFailed, "failed to parse command output")
)
