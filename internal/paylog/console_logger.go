package paylog

import (
	"fmt"
	"io"
	"os"

	"github.com/Sn4iZer/Payroll-System/internal/shared/apperror"
)

type Console struct {
	out io.Writer
}

func NewConsole() *Console {
	return &Console{out: os.Stdout}
}

func (c *Console) Log(message string) error {
	if _, err := fmt.Fprintln(c.out, stamp(message)); err != nil {
		return apperror.Wrap(err, apperror.CodeLogWriteFailed, "write payment trail line")
	}
	return nil
}
