package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKDFParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  KDFParams
		wantErr bool
	}{
		{name: "defaults", params: DefaultKDFParams()},
		{name: "minimum memory", params: KDFParams{Time: 1, MemoryKiB: MinKDFMemoryKiB, Threads: 1}},
		{name: "zero time", params: KDFParams{Time: 0, MemoryKiB: DefaultKDFMemoryKiB, Threads: 1}, wantErr: true},
		{name: "time too high", params: KDFParams{Time: MaxKDFTime + 1, MemoryKiB: DefaultKDFMemoryKiB, Threads: 1}, wantErr: true},
		{name: "memory too low", params: KDFParams{Time: 1, MemoryKiB: MinKDFMemoryKiB - 1, Threads: 1}, wantErr: true},
		{name: "memory too high", params: KDFParams{Time: 1, MemoryKiB: MaxKDFMemoryKiB + 1, Threads: 1}, wantErr: true},
		{name: "zero threads", params: KDFParams{Time: 1, MemoryKiB: DefaultKDFMemoryKiB, Threads: 0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
