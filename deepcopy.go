package handleseq

import "go.uber.org/zap"

// DeepCopy builds a brand-new sequence whose every handle owns a freshly
// copy-constructed duplicate of the corresponding src pointee. Capacity is
// reserved up front and a SliceGuard covers the result while it is being
// populated: if any copy-construction fails, every element already built is
// dropped before the error returns and DeepCopy yields nil. The source
// handles are never touched; they must be non-nil.
//
// Duplication goes through Copier, not Cloner: the result holds plain value
// copies, not whatever the type's own clone protocol produces.
func DeepCopy[V any, H OwnedCopier[V]](src []H) ([]H, error) {
	out := make([]H, 0, len(src))
	g := NewSliceGuard(&out)
	defer g.Drop()

	for i := range src {
		checkSrc("DeepCopy", src, i)
		c, err := src[i].Copy()
		if err != nil {
			Logger().Debug("deep copy rolled back",
				zap.Int("index", i),
				zap.Int("built", len(out)),
				zap.Error(err))
			return nil, &OpError{Op: "DeepCopy", Index: i, Err: err}
		}
		out = append(out, H(c))
	}

	g.Release()
	return out, nil
}
