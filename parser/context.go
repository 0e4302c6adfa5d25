package parser

import (
	"fmt"

	"github.com/dhamidi/mica/diag"
	"github.com/dhamidi/mica/reader"
)

// Context is the per-session mutable state of one parse: the ordered
// sequence of recorded diagnostics and the warning ignore switches. It is
// created once per parse and never shared across sessions.
type Context struct {
	config Config
	diags  []diag.Diagnostic
	depth  int
}

// NewContext creates a Context with the given configuration.
func NewContext(config Config) *Context {
	return &Context{config: config}
}

// Config returns the configuration of this parse.
func (c *Context) Config() Config { return c.config }

// Diagnostics returns the recorded diagnostics in discovery order.
func (c *Context) Diagnostics() []diag.Diagnostic { return c.diags }

// HasErrors reports whether any hard error has been recorded.
func (c *Context) HasErrors() bool {
	for _, d := range c.diags {
		if d.Severity == diag.Error {
			return true
		}
	}
	return false
}

func (c *Context) addError(code diag.Code, title string, snippet *diag.Snippet) {
	c.diags = append(c.diags, diag.Diagnostic{
		Severity: diag.Error,
		Code:     code,
		Title:    title,
		Snippet:  snippet,
	})
}

func (c *Context) addWarning(code diag.Code, title string, snippet *diag.Snippet) {
	c.diags = append(c.diags, diag.Diagnostic{
		Severity: diag.Warning,
		Code:     code,
		Title:    title,
		Snippet:  snippet,
	})
}

// enter accounts one level of grammar nesting. Past the configured bound it
// records a hard error instead of letting pathological input exhaust the
// stack.
func (c *Context) enter(r *reader.Reader) error {
	if max := c.config.maxDepth(); c.depth >= max {
		c.addError(
			diag.RecursionLimitExceeded,
			fmt.Sprintf("The input nests deeper than the supported %d grammar levels", max),
			diag.NewSnippet(r.SubstringToCurrent(r.Save()), "nesting exceeds the limit here"),
		)
		return ErrSyntax
	}
	c.depth++
	return nil
}

func (c *Context) leave() {
	c.depth--
}
