/*
Package option implements optional values and matching on them.

Optional values are used wherever a value may legitimately be absent and
absence must be distinguishable from an empty value, e.g. the tag of an
HTML leaf node which renders its value verbatim if no tag is set.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package option

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdhtml.core'.
func tracer() tracing.Trace {
	return tracing.Select("mdhtml.core")
}
