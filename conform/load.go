package conform

import (
	"fmt"
	"go/token"
	"go/types"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

// === Candidate Universe ====================================================

// Universe is the collection of type-checked packages which candidate types
// are drawn from. It is created by Load and serves two purposes: resolving
// type expressions to go/types objects, and acting as an importer when
// type-checking candidate snippets against the loaded packages.
type Universe struct {
	fset *token.FileSet
	pkgs map[string]*packages.Package // packages by import path
}

// Load type-checks the packages matched by the given patterns, patterns being
// anything the underlying build system understands, "./..." included. The
// resulting universe holds the matched packages plus all of their
// dependencies.
func Load(patterns ...string) (*Universe, error) {
	fset := token.NewFileSet()
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedImports | packages.NeedDeps,
		Fset: fset,
	}
	loaded, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("cannot load candidate packages (%w)", err)
	}
	u := &Universe{fset: fset, pkgs: make(map[string]*packages.Package)}
	errcnt := 0
	packages.Visit(loaded, nil, func(p *packages.Package) {
		for _, e := range p.Errors {
			tracer().Errorf("package %s: %v", p.PkgPath, e)
			errcnt++
		}
		if p.Types != nil {
			u.pkgs[p.PkgPath] = p
		}
	})
	if errcnt > 0 {
		return nil, fmt.Errorf("loading produced %d errors", errcnt)
	}
	tracer().Infof("universe of %d packages", len(u.pkgs))
	return u, nil
}

// FileSet returns the position information of the loaded packages.
func (u *Universe) FileSet() *token.FileSet {
	return u.fset
}

// Packages returns the import paths of all loaded packages, sorted.
func (u *Universe) Packages() []string {
	paths := make([]string, 0, len(u.pkgs))
	for path := range u.pkgs {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Import resolves an import path from the loaded packages, making the
// universe an importer for the go/types type checker. This is what lets
// clients type-check candidate snippets against the universe, asserting that
// a snippet must fail to type-check included.
func (u *Universe) Import(path string) (*types.Package, error) {
	if p, ok := u.pkgs[path]; ok {
		return p.Types, nil
	}
	return nil, fmt.Errorf("package %q is not part of this universe", path)
}

var _ types.Importer = (*Universe)(nil)

// Resolve turns a textual type expression into a type from the universe.
// Expressions are built from predeclared type names ("int"), qualified names
// ("arraylist.Iterator", with the package given by import path, path suffix
// or package name), pointer prefixes and type argument lists:
//
//	u.Resolve("*arraylist.Iterator[int]")
//
// Composite types beyond pointers and instantiations are not understood.
func (u *Universe) Resolve(expr string) (types.Type, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("empty type expression")
	}
	if strings.HasPrefix(expr, "*") {
		inner, err := u.Resolve(expr[1:])
		if err != nil {
			return nil, err
		}
		return types.NewPointer(inner), nil
	}
	if i := strings.IndexByte(expr, '['); i > 0 && strings.HasSuffix(expr, "]") {
		base, err := u.Resolve(expr[:i])
		if err != nil {
			return nil, err
		}
		var args []types.Type
		for _, a := range splitArgs(expr[i+1 : len(expr)-1]) {
			arg, err := u.Resolve(a)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		return Instantiate(base, args...)
	}
	i := strings.LastIndexByte(expr, '.')
	if i < 0 {
		obj := types.Universe.Lookup(expr)
		if obj == nil {
			return nil, fmt.Errorf("no predeclared type %q", expr)
		}
		tn, ok := obj.(*types.TypeName)
		if !ok {
			return nil, fmt.Errorf("%q is not a type", expr)
		}
		return tn.Type(), nil
	}
	p, err := u.packageFor(expr[:i])
	if err != nil {
		return nil, err
	}
	obj := p.Types.Scope().Lookup(expr[i+1:])
	if obj == nil {
		return nil, fmt.Errorf("no type %s in package %s", expr[i+1:], p.PkgPath)
	}
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%s is not a type", expr)
	}
	return tn.Type(), nil
}

// packageFor finds a loaded package by import path, path suffix or package
// name. Short names are convenient in interactive use, but have to be
// unambiguous within the universe.
func (u *Universe) packageFor(name string) (*packages.Package, error) {
	if p, ok := u.pkgs[name]; ok {
		return p, nil
	}
	var hits []*packages.Package
	for _, p := range u.pkgs {
		if strings.HasSuffix(p.PkgPath, "/"+name) || p.Types.Name() == name {
			hits = append(hits, p)
		}
	}
	if len(hits) == 1 {
		return hits[0], nil
	} else if len(hits) == 0 {
		return nil, fmt.Errorf("package %q is not part of this universe", name)
	}
	paths := make([]string, len(hits))
	for i, p := range hits {
		paths[i] = p.PkgPath
	}
	sort.Strings(paths)
	return nil, fmt.Errorf("package %q is ambiguous: %s", name, strings.Join(paths, ", "))
}

// splitArgs splits a comma separated type argument list, respecting nested
// bracket pairs.
func splitArgs(s string) []string {
	var args []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, s[start:i])
				start = i + 1
			}
		}
	}
	return append(args, s[start:])
}

// Instantiate substitutes type arguments into a generic named type.
func Instantiate(t types.Type, args ...types.Type) (types.Type, error) {
	named, ok := t.(*types.Named)
	if !ok || named.TypeParams().Len() == 0 {
		return nil, fmt.Errorf("type %s is not generic", TypeString(t))
	}
	inst, err := types.Instantiate(types.NewContext(), named, args, true)
	if err != nil {
		return nil, fmt.Errorf("cannot instantiate %s (%w)", TypeString(t), err)
	}
	return inst, nil
}
