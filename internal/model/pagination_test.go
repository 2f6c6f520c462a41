package model

import (
	"reflect"
	"testing"
)

func TestPaginationMeta_HasNoWireTags(t *testing.T) {
	typ := reflect.TypeOf(PaginationMeta{})
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if tag, ok := f.Tag.Lookup("json"); ok {
			t.Errorf("field %s has json tag %q, PaginationMeta is not part of the API", f.Name, tag)
		}
	}
}
