package term

import (
	"context"
	"fmt"
	"sort"

	"github.com/fatih/color"

	"github.com/jonwraymond/execwrap/wrap"
)

// styles maps style names to their attribute sets. Whether escape codes are
// actually emitted follows the fatih/color global switches (color.NoColor,
// NO_COLOR, TTY detection).
var styles = map[string]*color.Color{
	"red":     color.New(color.FgRed),
	"green":   color.New(color.FgGreen),
	"yellow":  color.New(color.FgYellow),
	"blue":    color.New(color.FgBlue),
	"magenta": color.New(color.FgMagenta),
	"cyan":    color.New(color.FgCyan),
	"bold":    color.New(color.Bold),
	"faint":   color.New(color.Faint),
	"success": color.New(color.FgGreen, color.Bold),
	"warning": color.New(color.FgYellow, color.Bold),
	"error":   color.New(color.FgRed, color.Bold),
}

// StyleNames returns the registered style names, sorted.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Style returns the named color style.
func Style(name string) (*color.Color, error) {
	c, ok := styles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return c, nil
}

// Paint renders s in the named style.
func Paint(name, s string) (string, error) {
	c, err := Style(name)
	if err != nil {
		return "", err
	}
	return c.Sprint(s), nil
}

// Colorize returns a middleware that renders successful string results in the
// named style. A failing unit passes its failure through with the result
// untouched. An unknown style name fails the invocation without running the
// work.
func Colorize(name string) wrap.Middleware[string] {
	return func(work wrap.Work[string]) wrap.Work[string] {
		return func(ctx context.Context) (string, error) {
			c, err := Style(name)
			if err != nil {
				return "", err
			}

			result, err := work(ctx)
			if err != nil {
				return result, err
			}
			return c.Sprint(result), nil
		}
	}
}
