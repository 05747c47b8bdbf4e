package find_free_window

import (
	"context"
	"errors"
	"io"

	"github.com/m04kA/SMC-MeetingWindow/internal/api/handlers"
	findFreeWindow "github.com/m04kA/SMC-MeetingWindow/internal/usecase/find_free_window"
)

const (
	msgInputUnavailable = "не удалось прочитать данные о занятости"
	msgMalformedRecord  = "некорректная запись о занятости"
	msgNoFreeWindow     = "нет свободного окна в пределах горизонта поиска"
	msgInvalidInput     = "некорректные параметры окна поиска"
	msgInternalError    = "внутренняя ошибка"
	msgOutputFailed     = "не удалось вывести результат"
)

type Handler struct {
	useCase FindFreeWindowUseCase
	stdout  io.Writer
	stderr  io.Writer
	logger  Logger
}

func NewHandler(useCase FindFreeWindowUseCase, stdout, stderr io.Writer, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		stdout:  stdout,
		stderr:  stderr,
		logger:  logger,
	}
}

// Handle выполняет поиск и печатает две строки: начало и конец окна
// Возвращает код завершения процесса
func (h *Handler) Handle(ctx context.Context, req *findFreeWindow.Request) int {
	result, err := h.useCase.Execute(ctx, req)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, findFreeWindow.ErrInputUnavailable):
			h.logger.Error("FindFreeWindow - Input unavailable: %v", err)
			h.respondError(msgInputUnavailable)
			return handlers.ExitInputUnavailable

		case errors.Is(err, findFreeWindow.ErrMalformedRecord):
			h.logger.Error("FindFreeWindow - Malformed record: %v", err)
			h.respondError(msgMalformedRecord)
			return handlers.ExitMalformedRecord

		case errors.Is(err, findFreeWindow.ErrNoFreeWindow):
			h.logger.Warn("FindFreeWindow - No free window: %v", err)
			h.respondError(msgNoFreeWindow)
			return handlers.ExitNoFreeWindow

		case errors.Is(err, findFreeWindow.ErrInvalidInput):
			h.logger.Warn("FindFreeWindow - Invalid input: %v", err)
			h.respondError(msgInvalidInput)
			return handlers.ExitFailure

		default:
			h.logger.Error("FindFreeWindow - Failed to find window: %v", err)
			h.respondError(msgInternalError)
			return handlers.ExitFailure
		}
	}

	output := FromUseCaseResponse(result)

	if err := handlers.RespondLines(h.stdout, output.Lines()...); err != nil {
		h.logger.Error("FindFreeWindow - Failed to write output: %v", err)
		h.respondError(msgOutputFailed)
		return handlers.ExitFailure
	}

	h.logger.Info("FindFreeWindow - Window printed: %s - %s", output.Start, output.End)
	return handlers.ExitOK
}

// respondError сообщает пользователю об ошибке; сбой записи только логируется
func (h *Handler) respondError(message string) {
	if err := handlers.RespondError(h.stderr, message); err != nil {
		h.logger.Error("FindFreeWindow - Failed to write error message %q: %v", message, err)
	}
}
