package fake_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/fake"
)

func TestRingPushShifts(t *testing.T) {
	seed := []int{1, 2, 3}
	r := fake.NewRing(seed...)
	seed[0] = 100
	r.Push(4)
	if diff := cmp.Diff([]int{2, 3, 4}, r.Items()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if r.Pushes != 1 || r.Last() != 4 || r.Len() != 3 {
		t.Errorf("Pushes=%d Last=%d Len=%d", r.Pushes, r.Last(), r.Len())
	}
	if _, err := r.Get(3); err == nil {
		t.Error("Get(3) should fail")
	}
}

func TestNewRingRejectsEmpty(t *testing.T) {
	defer func() {
		rec := recover()
		err, ok := rec.(error)
		if !ok || !errors.Is(err, api.ErrInvalidConfiguration) {
			t.Errorf("recovered %v, want ErrInvalidConfiguration", rec)
		}
	}()
	fake.NewRing[int]()
}
