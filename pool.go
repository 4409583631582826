package listview

// Kind identifies a reusable row variety. Rows of the same kind are
// interchangeable once repopulated, so an idle view of a kind can serve any
// row requesting that kind.
type Kind string

// reusePool keeps idle row views bucketed by kind. Checkout pops the most
// recently retired view so the warmest instance is reused first; when a
// bucket is empty a fresh view is constructed. Views are never destroyed,
// only hidden while idle.
type reusePool struct {
	constructors map[Kind]func() Row
	idle         map[Kind][]Row

	// The concrete kind of every view this pool has ever issued. Check-in
	// files views by this record, so a view only ever lands in the bucket
	// matching its own kind.
	kinds map[Row]Kind
}

func newReusePool() *reusePool {
	return &reusePool{
		constructors: make(map[Kind]func() Row),
		idle:         make(map[Kind][]Row),
		kinds:        make(map[Row]Kind),
	}
}

func (p *reusePool) register(kind Kind, construct func() Row) {
	if construct == nil {
		panic("listview: nil constructor for kind " + string(kind))
	}
	p.constructors[kind] = construct
}

// checkout returns an idle view of the given kind, constructing one when
// none is available. The bucket for the kind is created on first use.
func (p *reusePool) checkout(kind Kind) Row {
	bucket, ok := p.idle[kind]
	if !ok {
		p.idle[kind] = nil
	}
	if len(bucket) == 0 {
		construct, ok := p.constructors[kind]
		if !ok {
			panic("listview: no constructor registered for kind " + string(kind))
		}
		view := construct()
		if view == nil {
			panic("listview: constructor for kind " + string(kind) + " returned nil")
		}
		p.kinds[view] = kind
		return view
	}
	view := bucket[len(bucket)-1]
	p.idle[kind] = bucket[:len(bucket)-1]
	return view
}

// checkin hides the view and files it under its concrete kind. Handing back
// a view the pool never issued is a programming error.
func (p *reusePool) checkin(view Row) {
	kind, ok := p.kinds[view]
	if !ok {
		panic("listview: check-in of a row view the pool never issued")
	}
	view.SetVisible(false)
	p.idle[kind] = append(p.idle[kind], view)
}
