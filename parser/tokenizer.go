// Package parser implements a minimal textual DSL for building a
// kindex.Conjunction without hand-chaining In/NotIn calls — adapted
// from the teacher's parser.ValueTokenizer/parser.CommonStrParser
// split between a tokenizer stage and a value stage.
//
// Grammar (one conjunction per string, expressions separated by ';'):
//
//	expr       := field op valueList
//	op         := "=" | "!="
//	valueList  := value ("," value)*
//	field      := the non-empty text before the operator, trimmed of
//	              surrounding space
//
// Values are parsed as int64 when every value in the list parses as
// one, otherwise the whole list is kept as strings — there is no
// per-value type mixing, matching kindex.Values' closed sum type.
package parser

import (
	"fmt"
	"strings"
)

// Token is one "field op values" clause, not yet value-typed.
type Token struct {
	Field    string
	Positive bool
	Raw      []string
}

// Tokenize splits a DSL conjunction string into its clauses.
func Tokenize(s string) ([]Token, error) {
	clauses := strings.Split(s, ";")
	tokens := make([]Token, 0, len(clauses))
	for _, clause := range clauses {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		tok, err := tokenizeClause(clause)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func tokenizeClause(clause string) (Token, error) {
	op := "="
	idx := strings.Index(clause, "!=")
	positive := true
	if idx >= 0 {
		op = "!="
		positive = false
	} else {
		idx = strings.Index(clause, "=")
		if idx < 0 {
			return Token{}, fmt.Errorf("parser: clause %q missing '=' or '!='", clause)
		}
	}
	field := strings.TrimSpace(clause[:idx])
	if field == "" {
		return Token{}, fmt.Errorf("parser: clause %q has an empty field", clause)
	}
	rest := clause[idx+len(op):]
	raw := strings.Split(rest, ",")
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return Token{}, fmt.Errorf("parser: clause %q has no values", clause)
	}
	return Token{Field: field, Positive: positive, Raw: values}, nil
}
