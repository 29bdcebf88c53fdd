// Package loader provides in-memory class registries implementing ir.Loader.
// Registries are safe for concurrent readers, so one registry can back many
// evaluator instances.
package loader

import (
	"fmt"
	"sync"

	"github.com/lyraproj/om-evaluator/ir"
)

type (
	// DefiningLoader is an ir.Loader that classes can be added to
	DefiningLoader interface {
		ir.Loader

		// SetClass adds a class declaration. An attempt to redefine an
		// already registered class panics.
		SetClass(class *ir.ClassDecl) *ir.ClassDecl

		// SetClasses adds all the given class declarations
		SetClasses(classes []*ir.ClassDecl)
	}

	basicLoader struct {
		lock    sync.RWMutex
		classes map[string]*ir.ClassDecl
	}

	parentedLoader struct {
		basicLoader
		parent ir.Loader
	}
)

// New returns an empty DefiningLoader
func New() DefiningLoader {
	return &basicLoader{classes: make(map[string]*ir.ClassDecl, 16)}
}

// NewParented returns an empty DefiningLoader that falls back to the given
// parent for names it does not define itself. The parent takes precedence.
func NewParented(parent ir.Loader) DefiningLoader {
	return &parentedLoader{basicLoader{classes: make(map[string]*ir.ClassDecl, 16)}, parent}
}

func (l *basicLoader) LoadClass(name string) (*ir.ClassDecl, bool) {
	l.lock.RLock()
	c, ok := l.classes[name]
	l.lock.RUnlock()
	return c, ok
}

func (l *basicLoader) SetClass(class *ir.ClassDecl) *ir.ClassDecl {
	l.lock.Lock()
	if _, ok := l.classes[class.Name()]; ok {
		l.lock.Unlock()
		panic(fmt.Sprintf(`attempt to redefine class '%s'`, class.Name()))
	}
	l.classes[class.Name()] = class
	l.lock.Unlock()
	return class
}

func (l *basicLoader) SetClasses(classes []*ir.ClassDecl) {
	for _, c := range classes {
		l.SetClass(c)
	}
}

func (l *parentedLoader) LoadClass(name string) (*ir.ClassDecl, bool) {
	c, ok := l.parent.LoadClass(name)
	if !ok {
		c, ok = l.basicLoader.LoadClass(name)
	}
	return c, ok
}
