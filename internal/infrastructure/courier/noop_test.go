package courier

import (
	"context"
	"errors"
	"testing"

	"github.com/meridian-cargo/website/internal/core/domain"
	"github.com/meridian-cargo/website/internal/core/ports"
)

var _ ports.CourierClient = Noop{}

func TestNoop_AlwaysNoData(t *testing.T) {
	for _, id := range []string{"ABC123", "", "anything"} {
		rec, err := Noop{}.Track(context.Background(), id)
		if !errors.Is(err, domain.ErrNoCourierData) {
			t.Errorf("%q: expected ErrNoCourierData, got %v", id, err)
		}
		if rec != nil {
			t.Errorf("%q: expected nil record", id)
		}
	}
}
