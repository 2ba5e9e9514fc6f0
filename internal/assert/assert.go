package assert

import (
	"fmt"
	"reflect"

	"github.com/oliverbestmann/erased/internal/layout"
)

func FitsInline(t reflect.Type) {
	if l := layout.Of(t); !l.FitsInline() {
		panic(fmt.Sprintf("type %s does not fit into an inline buffer (%s)", t, l))
	}
}

func IsEmpty(hasValue bool, what string) {
	if hasValue {
		panic(fmt.Sprintf("expected %s to be empty", what))
	}
}
