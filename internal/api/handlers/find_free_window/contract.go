package find_free_window

import (
	"context"

	findFreeWindow "github.com/m04kA/SMC-MeetingWindow/internal/usecase/find_free_window"
)

type FindFreeWindowUseCase interface {
	Execute(ctx context.Context, req *findFreeWindow.Request) (*findFreeWindow.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
