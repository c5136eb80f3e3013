package token

import "testing"

func TestIsReserved(t *testing.T) {
	if !IsReserved("isa") {
		t.Fatal("expected isa to be reserved")
	}
	if !IsReserved("sub") {
		t.Fatal("expected sub to be reserved")
	}
	if IsReserved("person") {
		t.Fatal("expected an ordinary identifier not to be reserved")
	}
}
