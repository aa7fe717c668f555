package commands

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes carried by handler failures so hosts can branch on the failure
// class without string-matching messages. The CMS_ prefix keeps them apart
// from codes a host's own command layer may emit.
const (
	codeValidationFailed = "CMS_COMMAND_VALIDATION"
	codeCanceled         = "CMS_COMMAND_CANCELED"
	codeDeadlineExceeded = "CMS_COMMAND_DEADLINE"
	codeContextError     = "CMS_COMMAND_CONTEXT"
	codeExecutionFailed  = "CMS_COMMAND_EXECUTION"
)

// tagged reports whether err already carries a category so double-wrapping
// never buries the original code.
func tagged(err error) bool {
	return goerrors.IsWrapped(err)
}

func wrapValidationError(err error) error {
	if err == nil || tagged(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "message failed validation").
		WithTextCode(codeValidationFailed)
}

func wrapContextError(err error) error {
	if err == nil || tagged(err) {
		return err
	}
	switch err {
	case context.Canceled:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "operation canceled").
			WithTextCode(codeCanceled)
	case context.DeadlineExceeded:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "operation deadline exceeded").
			WithTextCode(codeDeadlineExceeded)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "operation context failed").
			WithTextCode(codeContextError)
	}
}

func wrapExecuteError(err error) error {
	if err == nil || tagged(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "operation failed").
		WithTextCode(codeExecutionFailed)
}
