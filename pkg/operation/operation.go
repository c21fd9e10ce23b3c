package operation

import (
	"context"

	"github.com/winshell/fileops/pkg/request"
	"github.com/winshell/fileops/pkg/shell"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operator is the main interface for running file operations.
type Operator interface {
	// Execute runs the requested operation through the shell service
	// and returns its outcome. The call blocks until the user-facing
	// operation finishes.
	Execute(ctx context.Context, req *request.Request) (Outcome, error)
}

// 🔧 Options contains configuration for the operator.
type Options struct {
	// Service is the shell file-operation capability.
	Service shell.Service
}

// 🏭 New creates a new operator with the given options.
func New(opts Options) (Operator, error) {
	if opts.Service == nil {
		return nil, errors.Errorf("service is required")
	}
	return &executor{service: opts.Service}, nil
}
