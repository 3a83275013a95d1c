package bnf

import (
	"github.com/npillmayer/llkit/ll"
	"gopkg.in/yaml.v3"
)

// document is the YAML form of a grammar. Rules is either a sequence of
// rule strings or a block of rules in text format.
type document struct {
	Name  string    `yaml:"name"`
	Start string    `yaml:"start"`
	Rules yaml.Node `yaml:"rules"`
}

// ParseYAML reads a grammar from a YAML document. Line numbers of syntax
// errors refer to the document.
func ParseYAML(data []byte) (*ll.Grammar, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Name == "" {
		doc.Name = "G"
	}
	r := &reader{b: ll.NewGrammarBuilder(doc.Name)}
	if doc.Start != "" {
		r.b.Start(doc.Start)
	}
	switch doc.Rules.Kind {
	case yaml.ScalarNode:
		// block scalars start on the line after the key
		offset := doc.Rules.Line
		if doc.Rules.Style&(yaml.LiteralStyle|yaml.FoldedStyle) == 0 {
			offset--
		}
		if err := r.read(doc.Rules.Value, offset); err != nil {
			return nil, err
		}
	case yaml.SequenceNode:
		for _, rule := range doc.Rules.Content {
			if rule.Kind != yaml.ScalarNode {
				return nil, &SyntaxError{Line: rule.Line, Msg: "rule must be a string"}
			}
			if err := r.read(rule.Value, rule.Line-1); err != nil {
				return nil, err
			}
		}
	case 0:
		return nil, &SyntaxError{Line: 1, Msg: "document has no rules"}
	default:
		return nil, &SyntaxError{Line: doc.Rules.Line,
			Msg: "rules must be a list or a text block"}
	}
	tracer().Debugf("read grammar %s from YAML", doc.Name)
	return r.b.Grammar()
}
