package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/arraylist/internal/arraylist"
)

// Error kinds a step may expect.
const (
	KindInvalidArgument   = "invalid_argument"
	KindIndexOutOfBounds  = "index_out_of_bounds"
	KindElementNotFound   = "element_not_found"
	kindUnexpectedFailure = "error"
)

// Scenario is a scripted sequence of list operations over string elements.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Capacity    *int   `yaml:"capacity,omitempty"` // nil selects the default constructor
	ExpectError string `yaml:"expect_error,omitempty"`
	Ops         []Op   `yaml:"ops"`
}

type Op struct {
	Op          string   `yaml:"op"`
	Value       string   `yaml:"value,omitempty"`
	Values      []string `yaml:"values,omitempty"`
	Index       int      `yaml:"index,omitempty"`
	Expect      *string  `yaml:"expect,omitempty"`
	ExpectSize  *int     `yaml:"expect_size,omitempty"`
	ExpectError string   `yaml:"expect_error,omitempty"`
}

func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

func (s *Scenario) Validate() error {
	if s.Name == "" {
		return errors.New("scenario: missing name")
	}
	if !validKind(s.ExpectError) {
		return fmt.Errorf("scenario %s: unknown error kind %q", s.Name, s.ExpectError)
	}
	for i, op := range s.Ops {
		if _, ok := ops[op.Op]; !ok {
			return fmt.Errorf("scenario %s: op %d: unknown op %q", s.Name, i, op.Op)
		}
		if !validKind(op.ExpectError) {
			return fmt.Errorf("scenario %s: op %d: unknown error kind %q", s.Name, i, op.ExpectError)
		}
	}
	return nil
}

func (s *Scenario) InitialCapacity() int {
	if s.Capacity == nil {
		return arraylist.DefaultCapacity
	}
	return *s.Capacity
}

func validKind(kind string) bool {
	switch kind {
	case "", KindInvalidArgument, KindIndexOutOfBounds, KindElementNotFound:
		return true
	}
	return false
}

// ErrorKind maps a list error to its scenario error kind.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, arraylist.ErrInvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, arraylist.ErrIndexOutOfBounds):
		return KindIndexOutOfBounds
	case errors.Is(err, arraylist.ErrElementNotFound):
		return KindElementNotFound
	default:
		return kindUnexpectedFailure
	}
}
