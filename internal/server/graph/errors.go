package graph

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gqlblog/internal/common"
	"github.com/dmitrijs2005/gqlblog/internal/logging"
	gqlerrors "github.com/graph-gophers/graphql-go/errors"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeBadUserInput   = "BAD_USER_INPUT"
	CodeConflict       = "CONFLICT"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeForbidden      = "FORBIDDEN"
	CodeInternalServer = "INTERNAL_SERVER_ERROR"
)

// Error is what resolvers hand back to the engine. The engine copies
// Extensions into the response error.
type Error struct {
	Code    string
	Message string
	err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

// present classifies a service error. Known service errors keep their
// message; anything else is an upstream failure, logged in full and shown
// to the client as "internal error".
func present(ctx context.Context, logger logging.Logger, err error) error {
	if err == nil {
		return nil
	}
	var gqlErr *Error
	if errors.As(err, &gqlErr) {
		return gqlErr
	}

	code := errorCode(err)
	if code == CodeInternalServer {
		logger.Error(ctx, "resolver failed", "error", err)
		return &Error{Code: code, Message: common.ErrorInternal.Error(), err: err}
	}
	return &Error{Code: code, Message: err.Error(), err: err}
}

func (r *Resolver) fail(ctx context.Context, err error) error {
	return present(ctx, r.logger, err)
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return CodeBadUserInput
	case errors.Is(err, common.ErrorNotFound):
		return CodeNotFound
	case errors.Is(err, common.ErrorAlreadyExists):
		return CodeConflict
	case errors.Is(err, common.ErrorUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, common.ErrorForbidden):
		return CodeForbidden
	default:
		return CodeInternalServer
	}
}

// panicHandler turns a recovered resolver panic into an internal error and
// logs it. It serves as both the engine's log.Logger and PanicHandler.
type panicHandler struct {
	logger logging.Logger
}

func (h panicHandler) LogPanic(ctx context.Context, value interface{}) {
	h.logger.Error(ctx, "resolver panicked", "panic", fmt.Sprint(value))
}

func (h panicHandler) MakePanicError(context.Context, interface{}) *gqlerrors.QueryError {
	return &gqlerrors.QueryError{
		Message:    common.ErrorInternal.Error(),
		Extensions: map[string]interface{}{"code": CodeInternalServer},
	}
}
