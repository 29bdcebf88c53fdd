package yaml2ir

import (
	"strings"

	"github.com/lyraproj/issue/issue"
)

const (
	ParseError             = `EVAL_YAML_PARSE_ERROR`
	IllegalType            = `EVAL_YAML_ILLEGAL_TYPE`
	BadVersion             = `EVAL_YAML_BAD_VERSION`
	UnknownParameter       = `EVAL_YAML_UNKNOWN_PARAMETER`
	UnrecognizedExpression = `EVAL_YAML_UNRECOGNIZED_EXPRESSION`
)

func joinPath(path interface{}) string {
	return strings.Join(path.([]string), `/`)
}

func init() {
	issue.Hard(ParseError, `unable to parse YAML class definitions: %{detail}`)

	issue.Hard2(IllegalType, `the value must be %{expected}. Got %{actual}. Path %{path}`,
		issue.HF{`path`: joinPath, `expected`: issue.AnOrA, `actual`: issue.AnOrA})

	issue.Hard2(BadVersion, `'%{version}' is not a semantic version. Path %{path}`,
		issue.HF{`path`: joinPath})

	issue.Hard2(UnknownParameter, `'%{name}' is not a parameter of class '%{class}'. Path %{path}`,
		issue.HF{`path`: joinPath})

	issue.Hard2(UnrecognizedExpression, `unrecognized expression %{keys}. Path %{path}`,
		issue.HF{`path`: joinPath})
}
