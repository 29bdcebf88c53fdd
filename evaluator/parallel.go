package evaluator

import (
	"golang.org/x/sync/errgroup"

	"github.com/lyraproj/om-evaluator/ir"
	"github.com/lyraproj/om-evaluator/om"
)

// Request names one instantiation to perform
type Request struct {
	Class  string
	Params []om.Value
}

// InstantiateAll evaluates the requests concurrently, one Evaluator instance
// per request. The loader must be safe for concurrent reads; the registries
// in the loader package are. Results are returned in request order. The
// first failure fails the whole call.
func InstantiateAll(loader ir.Loader, requests []Request, options ...Option) ([]om.Value, error) {
	results := make([]om.Value, len(requests))
	g := errgroup.Group{}
	for i := range requests {
		i := i
		r := requests[i]
		g.Go(func() error {
			v, err := New(loader, options...).Instantiate(r.Class, r.Params)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
