package predicate

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/katalvlaran/isomatch/converters"
	"github.com/katalvlaran/isomatch/isomorphism"
)

var (
	// ErrCompile wraps CEL parse and type-check failures.
	ErrCompile = errors.New("predicate: compile")
	// ErrEvaluate wraps the first runtime evaluation failure.
	ErrEvaluate = errors.New("predicate: evaluate")
)

var (
	celEnv     *cel.Env
	celEnvErr  error
	celEnvOnce sync.Once
)

func env() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		record := cel.MapType(cel.StringType, cel.DynType)
		celEnv, celEnvErr = cel.NewEnv(
			cel.Variable("q", record),
			cel.Variable("t", record),
		)
	})

	return celEnv, celEnvErr
}

// program is a compiled boolean expression plus its first runtime error.
type program struct {
	source string
	prg    cel.Program

	mu  sync.Mutex
	err error
}

func compile(expr string) (*program, error) {
	e, err := env()
	if err != nil {
		return nil, fmt.Errorf("%w: environment: %v", ErrCompile, err)
	}
	ast, issues := e.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrCompile, expr, issues.Err())
	}
	if !reflect.DeepEqual(ast.OutputType(), cel.BoolType) {
		return nil, fmt.Errorf("%w: %q: expected bool result, got %s", ErrCompile, expr, ast.OutputType())
	}
	prg, err := e.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrCompile, expr, err)
	}

	return &program{source: expr, prg: prg}, nil
}

func (p *program) eval(q, t map[string]any) bool {
	out, _, err := p.prg.Eval(map[string]any{"q": q, "t": t})
	if err != nil {
		p.record(err)
		return false
	}
	b, ok := out.Value().(bool)
	if !ok {
		p.record(fmt.Errorf("non-bool result %v", out.Value()))
		return false
	}

	return b
}

func (p *program) record(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err == nil {
		p.err = fmt.Errorf("%w: %q: %v", ErrEvaluate, p.source, err)
	}
}

// Err returns the first evaluation error, or nil.
func (p *program) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.err
}

// String returns the expression source.
func (p *program) String() string { return p.source }

// VertexExpr is a compiled vertex compatibility expression. It is safe for
// concurrent use by several searches.
type VertexExpr struct{ *program }

// CompileVertex compiles a boolean CEL expression over q and t vertex records.
func CompileVertex(expr string) (*VertexExpr, error) {
	p, err := compile(expr)
	if err != nil {
		return nil, err
	}

	return &VertexExpr{p}, nil
}

// Matcher binds the expression to a query/target pair of snapshots. Vertex
// records are materialized once per call.
func (x *VertexExpr) Matcher(q, t *converters.Indexed) isomorphism.VertexMatcher {
	qr, tr := vertexRecords(q), vertexRecords(t)

	return func(qi, ti int) bool {
		return x.eval(qr[qi], tr[ti])
	}
}

// EdgeExpr is a compiled edge compatibility expression.
type EdgeExpr struct{ *program }

// CompileEdge compiles a boolean CEL expression over q and t edge records.
func CompileEdge(expr string) (*EdgeExpr, error) {
	p, err := compile(expr)
	if err != nil {
		return nil, err
	}

	return &EdgeExpr{p}, nil
}

// Matcher binds the expression to a query/target pair of snapshots.
func (x *EdgeExpr) Matcher(q, t *converters.Indexed) isomorphism.EdgeMatcher {
	qr, tr := edgeRecords(q), edgeRecords(t)

	return func(qe, te int) bool {
		return x.eval(qr[qe], tr[te])
	}
}

func vertexRecords(x *converters.Indexed) []map[string]any {
	out := make([]map[string]any, x.VertexCount())
	for i := range out {
		v := x.VertexAt(i)
		out[i] = map[string]any{
			"id":     v.ID,
			"label":  v.Label,
			"degree": int64(x.Degree(i)),
			"meta":   metaOf(v.Metadata),
		}
	}

	return out
}

func edgeRecords(x *converters.Indexed) []map[string]any {
	out := make([]map[string]any, x.EdgeCount())
	for i := range out {
		e := x.EdgeAt(i)
		out[i] = map[string]any{
			"id":    e.ID,
			"label": e.Label,
			"from":  e.From,
			"to":    e.To,
			"meta":  metaOf(e.Metadata),
		}
	}

	return out
}

func metaOf(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}

	return m
}
