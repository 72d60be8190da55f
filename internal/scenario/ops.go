package scenario

import (
	"sort"
	"strconv"

	"github.com/san-kum/arraylist/internal/arraylist"
)

type opFunc func(l *arraylist.ArrayList[string], op Op) (string, error)

var ops = map[string]opFunc{
	"add": func(l *arraylist.ArrayList[string], op Op) (string, error) {
		l.Add(op.Value)
		return "", nil
	},
	"insert": func(l *arraylist.ArrayList[string], op Op) (string, error) {
		return "", l.Insert(op.Value, op.Index)
	},
	"add_all": func(l *arraylist.ArrayList[string], op Op) (string, error) {
		return "", l.AddAll(arraylist.SliceSequence[string](op.Values))
	},
	"get": func(l *arraylist.ArrayList[string], op Op) (string, error) {
		return l.Get(op.Index)
	},
	"set": func(l *arraylist.ArrayList[string], op Op) (string, error) {
		return "", l.Set(op.Value, op.Index)
	},
	"remove_at": func(l *arraylist.ArrayList[string], op Op) (string, error) {
		return l.RemoveAt(op.Index)
	},
	"remove": func(l *arraylist.ArrayList[string], op Op) (string, error) {
		return l.Remove(op.Value)
	},
	"size": func(l *arraylist.ArrayList[string], op Op) (string, error) {
		return strconv.Itoa(l.Size()), nil
	},
	"is_empty": func(l *arraylist.ArrayList[string], op Op) (string, error) {
		return strconv.FormatBool(l.IsEmpty()), nil
	},
	"contains": func(l *arraylist.ArrayList[string], op Op) (string, error) {
		return strconv.FormatBool(l.Contains(op.Value)), nil
	},
	"index_of": func(l *arraylist.ArrayList[string], op Op) (string, error) {
		return strconv.Itoa(l.IndexOf(op.Value)), nil
	},
}

func ListOps() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
