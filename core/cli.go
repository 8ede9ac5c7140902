package core

import (
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

func CreateHelpErr() error {
	err := flags.Error{
		Type:    flags.ErrHelp,
		Message: "show help message",
	}
	return &err
}

// PreprocessArgs strips the program name before command parsing.
func PreprocessArgs(args []string) ([]string, error) {
	if len(args) < 1 {
		return nil, errors.New("core: missing program arguments")
	}
	return args[1:], nil
}
