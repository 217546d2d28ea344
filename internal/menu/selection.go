package menu

import (
	"fmt"
	"strconv"
	"strings"
)

// Selection is the outcome of a prompt: either cancelled, or a 0-based
// index into the displayed branch list.
type Selection struct {
	Cancelled bool
	Index     int
}

// NotANumberError reports a response that is neither a quit word nor an
// integer.
type NotANumberError struct {
	Input string
}

func (e *NotANumberError) Error() string {
	return fmt.Sprintf("not a number: %q", e.Input)
}

// OutOfRangeError reports an integer response outside the menu range.
type OutOfRangeError struct {
	Value int
	Max   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%d is out of range: pick a number between 1 and %d", e.Value, e.Max)
}

// Parse interprets a trimmed prompt response against a menu of count
// entries. An empty response or a quit word cancels; otherwise the
// response must be an integer in [1, count].
func Parse(response string, count int) (Selection, error) {
	switch strings.ToLower(response) {
	case "", "q", "quit", "exit":
		return Selection{Cancelled: true}, nil
	}

	n, err := strconv.Atoi(response)
	if err != nil {
		return Selection{}, &NotANumberError{Input: response}
	}
	if n < 1 || n > count {
		return Selection{}, &OutOfRangeError{Value: n, Max: count}
	}
	return Selection{Index: n - 1}, nil
}
