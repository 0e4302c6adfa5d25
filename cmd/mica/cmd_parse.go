package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dhamidi/mica/diag"
	"github.com/dhamidi/mica/parser"
	"github.com/dhamidi/mica/project"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a .mica file and dump the syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			if ext := filepath.Ext(filename); ext != ".mica" {
				return fmt.Errorf("expected .mica file, got %s", ext)
			}

			content, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			cfg := parser.Config{}
			if proj, err := project.Load(); err == nil {
				cfg = proj.ParserConfig()
			}

			file, diags := parser.Parse(filename, string(content), cfg)
			if len(diags) > 0 {
				fmt.Fprintln(os.Stderr, diag.RenderAll(diags, false))
			}
			if file == nil {
				return fmt.Errorf("parse %s: invalid syntax", filename)
			}

			switch outputFormat {
			case "text":
				printTree(os.Stdout, file, "")
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(nodeToJSON(file)); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format: text or json")

	return cmd
}

func printTree(w io.Writer, node parser.Node, indent string) {
	fmt.Fprintf(w, "%s%s\n", indent, describeNode(node))
	for _, child := range nodeChildren(node) {
		printTree(w, child, indent+"  ")
	}
}

func describeNode(node parser.Node) string {
	span := node.Span()
	switch n := node.(type) {
	case *parser.File:
		return fmt.Sprintf("file %s", span)
	case *parser.VariableDeclaration:
		return fmt.Sprintf("let %s %s", n.Name().Name(), span)
	case *parser.ReturnStatement:
		return fmt.Sprintf("return %s", span)
	case *parser.Number:
		return fmt.Sprintf("number %s (%s) %s", span.Content(), n.Radix(), span)
	case *parser.Identifier:
		return fmt.Sprintf("identifier %s %s", n.Name(), span)
	default:
		return fmt.Sprintf("%T %s", node, span)
	}
}

func nodeChildren(node parser.Node) []parser.Node {
	switch n := node.(type) {
	case *parser.File:
		children := make([]parser.Node, 0, len(n.Statements()))
		for _, stmt := range n.Statements() {
			children = append(children, stmt)
		}
		return children
	case *parser.VariableDeclaration:
		return []parser.Node{n.Value()}
	case *parser.ReturnStatement:
		return []parser.Node{n.Value()}
	default:
		return nil
	}
}

type nodeJSON struct {
	Kind     string     `json:"kind"`
	Span     string     `json:"span"`
	Text     string     `json:"text,omitempty"`
	Name     string     `json:"name,omitempty"`
	Radix    string     `json:"radix,omitempty"`
	Children []nodeJSON `json:"children,omitempty"`
}

func nodeToJSON(node parser.Node) nodeJSON {
	out := nodeJSON{Span: node.Span().String()}

	switch n := node.(type) {
	case *parser.File:
		out.Kind = "file"
	case *parser.VariableDeclaration:
		out.Kind = "variable_declaration"
		out.Name = n.Name().Name()
	case *parser.ReturnStatement:
		out.Kind = "return_statement"
	case *parser.Number:
		out.Kind = "number"
		out.Text = n.Span().Content()
		out.Radix = n.Radix().String()
	case *parser.Identifier:
		out.Kind = "identifier"
		out.Name = n.Name()
	default:
		out.Kind = fmt.Sprintf("%T", node)
	}

	for _, child := range nodeChildren(node) {
		out.Children = append(out.Children, nodeToJSON(child))
	}
	return out
}
