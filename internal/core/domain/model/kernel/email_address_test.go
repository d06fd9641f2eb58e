package kernel_test

import (
	"testing"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmailAddress(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{
			name: "typical address",
			raw:  "ada@example.com",
		},
		{
			name: "minimal address",
			raw:  "a@b",
		},
		{
			name:    "empty string",
			raw:     "",
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name:    "missing separator",
			raw:     "ada.example.com",
			wantErr: errs.ErrValueDoesNotMatchPattern,
		},
		{
			name:    "separator only",
			raw:     "@",
			wantErr: errs.ErrValueDoesNotMatchPattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := kernel.NewEmailAddress("EmailAddress", tt.raw)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, e)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.raw, e.Value())
			assert.NoError(t, e.Validate())
		})
	}

	t.Run("pattern failure names raw value and pattern", func(t *testing.T) {
		_, err := kernel.NewEmailAddress("EmailAddress", "not-an-email")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not-an-email")
		assert.Contains(t, err.Error(), "@")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var e kernel.EmailAddress
		assert.Equal(t, kernel.ErrEmailAddressIsNotConstructed, e.Validate())
	})
}
