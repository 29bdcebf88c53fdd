package om

import "github.com/lyraproj/issue/issue"

const (
	CyclicReference      = `EVAL_CYCLIC_REFERENCE`
	IllegalArgumentCount = `EVAL_ILLEGAL_ARGUMENT_COUNT`
	IndexOutOfBounds     = `EVAL_INDEX_OUT_OF_BOUNDS`
	MapKeyNotConstant    = `EVAL_MAP_KEY_NOT_CONSTANT`
	TypeMismatch         = `EVAL_TYPE_MISMATCH`
	UnhandledExpression  = `EVAL_UNHANDLED_EXPRESSION`
	UnknownClass         = `EVAL_UNKNOWN_CLASS`
	UnknownField         = `EVAL_UNKNOWN_FIELD`
	UnknownMapKey        = `EVAL_UNKNOWN_MAP_KEY`
)

func init() {
	issue.Hard(CyclicReference, `reference cycle detected while finalizing %{value}`)

	issue.Hard(IllegalArgumentCount, `class '%{class}' expects %{expected} arguments, got %{actual}`)

	issue.Hard(IndexOutOfBounds, `tuple index %{index} is out of bounds, the tuple has %{size} elements`)

	issue.Hard(MapKeyNotConstant, `map keys must be constant expressions, got %{expression}`)

	issue.Hard2(TypeMismatch, `expected %{expected}, got %{actual}`, issue.HF{`actual`: issue.AnOrA})

	issue.Hard(UnhandledExpression, `evaluator cannot handle an expression of type %{expression}`)

	issue.Hard(UnknownClass, `reference to unresolved class '%{name}'`)

	issue.Hard(UnknownField, `class '%{class}' has no field named '%{field}'`)

	issue.Hard(UnknownMapKey, `map has no entry for key '%{key}'`)
}

// ErrorCode returns the issue code of an error returned by the evaluator, or
// the empty code when the error did not originate here.
func ErrorCode(err error) issue.Code {
	if r, ok := err.(issue.Reported); ok {
		return r.Code()
	}
	return ``
}
