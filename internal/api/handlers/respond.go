package handlers

import (
	"bufio"
	"fmt"
	"io"
)

// Коды завершения процесса
const (
	ExitOK               = 0
	ExitFailure          = 1
	ExitInputUnavailable = 2
	ExitMalformedRecord  = 3
	ExitNoFreeWindow     = 4
)

// RespondLines пишет строки в w, каждую с переводом строки
func RespondLines(w io.Writer, lines ...string) error {
	buf := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := fmt.Fprintln(buf, line); err != nil {
			return err
		}
	}
	return buf.Flush()
}

// RespondError пишет сообщение об ошибке для пользователя
func RespondError(w io.Writer, message string) error {
	return RespondLines(w, "ошибка: "+message)
}
