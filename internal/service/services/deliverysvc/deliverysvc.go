package deliverysvc

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

// ErrInvalidCEP is returned when the postal code is not exactly 8 digits
// after normalization.
var ErrInvalidCEP = errors.New("cep must have 8 digits")

// Defaults suggested for the address form once a region is eligible.
const (
	DefaultCity         = "São Paulo"
	DefaultNeighborhood = "Centro"
)

// Result is the outcome of one eligibility check. City and Neighborhood
// carry auto-fill suggestions when the region is eligible.
type Result struct {
	CEP          string `json:"cep"`
	Eligible     bool   `json:"eligible"`
	City         string `json:"city,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
}

// DeliveryService classifies postal codes against the coverage rule:
// delivery is offered where the first CEP digit is 3 or lower. The check
// simulates a lookup round trip with a fixed delay and keeps only the
// most recent result.
type DeliveryService struct {
	delay time.Duration

	mu   sync.Mutex
	last *Result
}

// option is a function that configures the DeliveryService.
type option func(*DeliveryService)

// MustNewDeliveryService creates a new DeliveryService.
func MustNewDeliveryService(opts ...option) *DeliveryService {
	s := &DeliveryService{
		delay: 1500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithDelay sets the simulated lookup delay.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithDelay(d time.Duration) option {
	return func(s *DeliveryService) {
		s.delay = d
	}
}

// NormalizeCEP strips non-digit characters and truncates to 8 digits.
func NormalizeCEP(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == 8 {
				break
			}
		}
	}

	return b.String()
}

// Check classifies the postal code. It always completes with one of
// eligible/not-eligible once the input is valid; there is no failure
// outcome. A new check overwrites the previous result.
func (s *DeliveryService) Check(ctx context.Context, cep string) (Result, error) {
	normalized := NormalizeCEP(cep)
	if len(normalized) != 8 {
		return Result{}, ErrInvalidCEP
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return Result{}, ctx.Err()
		}
	}

	res := Result{
		CEP:      normalized,
		Eligible: normalized[0] <= '3',
	}
	if res.Eligible {
		res.City = DefaultCity
		res.Neighborhood = DefaultNeighborhood
	}

	s.mu.Lock()
	s.last = &res
	s.mu.Unlock()

	return res, nil
}

// LastResult returns the most recent check outcome; ok is false while no
// check has completed.
func (s *DeliveryService) LastResult() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last == nil {
		return Result{}, false
	}

	return *s.last, true
}
