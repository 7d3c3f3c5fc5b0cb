package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trimly/internal/domains/booking/repository"
)

func TestExceedsCapacity(t *testing.T) {
	tests := []struct {
		name      string
		used      int
		requested int
		capacity  int
		want      bool
	}{
		{name: "empty slot takes the booking", used: 0, requested: 1, capacity: 2, want: false},
		{name: "fills the slot exactly", used: 1, requested: 1, capacity: 2, want: false},
		{name: "one seat over", used: 2, requested: 1, capacity: 2, want: true},
		{name: "group larger than the whole slot", used: 0, requested: 5, capacity: 2, want: true},
		{name: "zero capacity rejects everything", used: 0, requested: 1, capacity: 0, want: true},
		{name: "reschedule to the same load", used: 0, requested: 2, capacity: 2, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repository.ExceedsCapacity(tt.used, tt.requested, tt.capacity))
		})
	}
}
