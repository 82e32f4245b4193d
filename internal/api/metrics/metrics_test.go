package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/meridian-cargo/website/internal/core/domain"
)

func TestLookupResult(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ResultFound},
		{domain.ErrTrackingNotFound, ResultNotFound},
		{fmt.Errorf("%w: open data/shipments.json: no such file", domain.ErrStoreUnavailable), ResultStoreUnavailable},
		{fmt.Errorf("%w: bad json", domain.ErrStoreCorrupt), ResultStoreCorrupt},
		{errors.New("boom"), ResultError},
	}
	for _, tc := range cases {
		if got := LookupResult(tc.err); got != tc.want {
			t.Errorf("LookupResult(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
