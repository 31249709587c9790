// Package parser puts os.Args and the environment into launch parameters and validates them
package parser

import (
	"errors"
	"flag"
	"fmt"

	"github.com/UnendingLoop/MiniGrep/internal/model"
)

var (
	ErrMissingQuery  = errors.New("didn't get a query string")
	ErrMissingSource = errors.New("didn't get a file name")
)

// LookupFunc - сигнатура os.LookupEnv
type LookupFunc func(key string) (string, bool)

// Resolve builds Config from the full argument list (args[0] is the program name).
// Extra arguments after the source are ignored.
func Resolve(args []string, lookup LookupFunc) (*model.Config, error) {
	// первый аргумент - имя программы, не проверяем
	if len(args) > 0 {
		args = args[1:]
	}

	var cfg model.Config
	switch len(args) {
	case 0:
		return nil, ErrMissingQuery
	case 1:
		return nil, ErrMissingSource
	default:
		cfg.Query = args[0]
		cfg.Source = args[1]
	}

	// важен только факт наличия переменной, значение не парсим
	_, insensitive := lookup(model.CaseInsensitiveEnv)
	cfg.CaseSensitive = !insensitive

	return &cfg, nil
}

// InitNode parses search-node flags, args are expected without the program name.
func InitNode(args []string) (*model.NodeInit, error) {
	flagParser := flag.NewFlagSet("minigrep-node", flag.ContinueOnError)
	addr := flagParser.String("address", model.DefaultNodeAddress, "specify search-node address")

	if err := flagParser.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse node flags: %w", err)
	}

	if *addr == "" {
		return nil, errors.New("empty search-node address")
	}

	return &model.NodeInit{Address: *addr}, nil
}
