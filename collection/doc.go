/*
Package collection implements a monad wrapping a sequence of values.

The wrapped value of a Collection is always a sequence. Of promotes a single
scalar to a sequence of length one:

	collection.Of(5).Emit()          // [5]
	collection.Of(1, 2).Emit()       // [1 2]
	collection.From(xs).Concat(7)    // xs followed by 7

Map hands the whole sequence to its function argument; use Fmap for
element-wise mapping.

Collections are stored in a persistent vector. Concatenation shares
structure with the original collection, which remains unchanged.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package collection

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.collection'.
func tracer() tracing.Trace {
	return tracing.Select("fp.collection")
}
