//go:build debug

package entity

import "fmt"

func violated(format string, args ...any) {
	panic(fmt.Sprintf("entity: "+format, args...))
}
