// core/registry/registry_test.go
package registry

import (
	"reflect"
	"testing"
)

func TestNextIDMonotonic(t *testing.T) {
	r := New()
	for want := 1; want <= 5; want++ {
		if got := r.NextID(); got != want {
			t.Fatalf("NextID() = %d, want %d", got, want)
		}
	}
}

func TestIDsNeverReused(t *testing.T) {
	r := New()
	id := r.NextID()
	r.Put(id, Range{Start: 0, End: 2})
	r.Remove(id)
	if got := r.NextID(); got != id+1 {
		t.Fatalf("NextID() after remove = %d, want %d", got, id+1)
	}
}

func TestPutGetRemove(t *testing.T) {
	r := New()
	r.Put(1, Range{Start: 3, End: 7})

	rg, ok := r.Get(1)
	if !ok || rg != (Range{Start: 3, End: 7}) {
		t.Fatalf("Get(1) = %+v, %v", rg, ok)
	}
	if _, ok := r.Get(2); ok {
		t.Fatal("Get(2) should miss")
	}

	rg, ok = r.Remove(1)
	if !ok || rg != (Range{Start: 3, End: 7}) {
		t.Fatalf("Remove(1) = %+v, %v", rg, ok)
	}
	if _, ok := r.Remove(1); ok {
		t.Fatal("second Remove(1) should miss")
	}
	if r.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", r.Len())
	}
}

func TestIDsAscending(t *testing.T) {
	r := New()
	for _, id := range []int{4, 1, 3} {
		r.Put(id, Range{Start: id, End: id + 1})
	}
	if got := r.IDs(); !reflect.DeepEqual(got, []int{1, 3, 4}) {
		t.Fatalf("IDs() = %v, want [1 3 4]", got)
	}
}

func TestEntriesSnapshotSafeToMutate(t *testing.T) {
	r := New()
	r.Put(1, Range{Start: 0, End: 2})
	r.Put(2, Range{Start: 5, End: 8})

	var seen []int
	for _, e := range r.Entries() {
		seen = append(seen, e.ID)
		r.Remove(e.ID)
		r.Put(e.ID+10, e.Range.Shift(1))
	}
	if !reflect.DeepEqual(seen, []int{1, 2}) {
		t.Fatalf("walked %v, want [1 2]", seen)
	}
	if got := r.IDs(); !reflect.DeepEqual(got, []int{11, 12}) {
		t.Fatalf("IDs() after mutation = %v, want [11 12]", got)
	}
}

func TestRangeHelpers(t *testing.T) {
	rg := Range{Start: 2, End: 5}
	if rg.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", rg.Len())
	}
	for pos, want := range map[int]bool{1: false, 2: true, 4: true, 5: false} {
		if got := rg.Contains(pos); got != want {
			t.Errorf("Contains(%d) = %v, want %v", pos, got, want)
		}
	}
	if got := rg.Shift(3); got != (Range{Start: 5, End: 8}) {
		t.Fatalf("Shift(3) = %+v", got)
	}
}
