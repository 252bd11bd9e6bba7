package cli

import (
	"errors"
	"strings"

	"github.com/iho/chching/internal/domain"
	"github.com/iho/chching/internal/usecase"
)

// ErrUnknownCommand is returned for an unrecognised keyword.
var ErrUnknownCommand = errors.New("Unknown command, enter \"help\" to see all commands")

// Usage lists the accepted command lines.
const Usage = `Commands:
  add income /de DESCRIPTION /da DD-MM-YYYY /v VALUE
  add expense /c CATEGORY /de DESCRIPTION /da DD-MM-YYYY /v VALUE
  delete income /in INDEX
  delete expense /in INDEX
  list
  balance
  help
  exit`

// ParseCommand turns one input line into a command.
func ParseCommand(line string) (usecase.Command, error) {
	keyword, fields := SplitLine(line)

	switch keyword {
	case "add income":
		return usecase.AddIncomeCommand{Fields: fields}, nil
	case "add expense":
		return usecase.AddExpenseCommand{Fields: fields}, nil
	case "delete income":
		index, err := domain.GetIncomeIndex(fields)
		if err != nil {
			return nil, err
		}
		return usecase.DeleteIncomeCommand{Index: index}, nil
	case "delete expense":
		index, err := domain.GetExpenseIndex(fields)
		if err != nil {
			return nil, err
		}
		return usecase.DeleteExpenseCommand{Index: index}, nil
	case "list":
		return usecase.ListCommand{}, nil
	case "balance":
		return usecase.BalanceCommand{}, nil
	case "help":
		return usecase.HelpCommand{Usage: Usage}, nil
	case "exit", "bye":
		return usecase.ExitCommand{}, nil
	default:
		return nil, ErrUnknownCommand
	}
}

// SplitLine separates the keyword from the "/key value" segments of a line.
// The keyword is lower-cased with runs of spaces collapsed. A repeated key
// keeps its last value.
func SplitLine(line string) (string, domain.Fields) {
	head, rest, _ := strings.Cut(line, "/")
	keyword := strings.ToLower(strings.Join(strings.Fields(head), " "))

	fields := domain.Fields{}
	if rest == "" {
		return keyword, fields
	}

	for _, segment := range strings.Split(rest, " /") {
		segment = strings.TrimSpace(segment)
		key, value, _ := strings.Cut(segment, " ")
		if key == "" {
			continue
		}
		fields[key] = strings.TrimSpace(value)
	}

	return keyword, fields
}
