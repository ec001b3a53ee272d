package internal

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/fatih/color"
)

var (
	ErrInvalidParam = errors.New("invalid parameter")
)

// WrapError annotates err with the calling function and line.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	pc, _, line, ok := runtime.Caller(1)
	if !ok {
		return err
	}
	fn := runtime.FuncForPC(pc).Name()
	details := strings.Split(fn, "/")
	fn = details[len(details)-1]

	return fmt.Errorf("%s:%d: %w", fn, line, err)
}

func RealPanic(err error) {
	fmt.Println(color.RedString("[err] %s", err.Error()))
	os.Exit(1)
}

func PrintError(err error) {
	fmt.Println(color.RedString("[err] %s", err.Error()))
}
