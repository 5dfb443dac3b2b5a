package instagram

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"login required", ErrLoginRequired, KindLoginRequired},
		{"wrapped login required", fmt.Errorf("login: %w", ErrLoginRequired), KindLoginRequired},
		{"challenge required", fmt.Errorf("login: %w: checkpoint", ErrChallengeRequired), KindChallengeRequired},
		{"rate limited", fmt.Errorf("feed: %w", ErrPleaseWait), KindRateLimited},
		{"anything else", errors.New("connection reset"), KindUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}
