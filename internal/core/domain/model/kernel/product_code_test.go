package kernel_test

import (
	"testing"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductCode(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantKind kernel.ProductKind
		wantErr  error
	}{
		{
			name:     "widget code",
			raw:      "W1234",
			wantKind: kernel.ProductKindWidget,
		},
		{
			name:     "gizmo code",
			raw:      "G123",
			wantKind: kernel.ProductKindGizmo,
		},
		{
			name:    "empty code",
			raw:     "",
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name:    "unrecognized prefix",
			raw:     "X1",
			wantErr: errs.ErrValueIsInvalid,
		},
		{
			name:    "widget code too short",
			raw:     "W123",
			wantErr: errs.ErrValueDoesNotMatchPattern,
		},
		{
			name:    "widget code too long",
			raw:     "W12345",
			wantErr: errs.ErrValueDoesNotMatchPattern,
		},
		{
			name:    "gizmo code too long",
			raw:     "G1234",
			wantErr: errs.ErrValueDoesNotMatchPattern,
		},
		{
			name:    "gizmo code with letters",
			raw:     "G1a3",
			wantErr: errs.ErrValueDoesNotMatchPattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := kernel.NewProductCode("ProductCode", tt.raw)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.raw, code.Value())
			assert.Equal(t, tt.wantKind, code.Kind())
			assert.NoError(t, code.Validate())
		})
	}

	t.Run("unrecognized prefix names the raw code", func(t *testing.T) {
		_, err := kernel.NewProductCode("ProductCode", "X1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "X1")
		assert.Contains(t, err.Error(), "unrecognized format")
	})

	t.Run("kind predicates", func(t *testing.T) {
		widget, err := kernel.NewProductCode("ProductCode", "W0001")
		require.NoError(t, err)
		assert.True(t, widget.IsWidget())
		assert.False(t, widget.IsGizmo())

		gizmo, err := kernel.NewProductCode("ProductCode", "G001")
		require.NoError(t, err)
		assert.True(t, gizmo.IsGizmo())
		assert.False(t, gizmo.IsWidget())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var code kernel.ProductCode
		assert.Equal(t, kernel.ErrProductCodeIsNotConstructed, code.Validate())
	})
}

func TestProductKind_String(t *testing.T) {
	assert.Equal(t, "Widget", kernel.ProductKindWidget.String())
	assert.Equal(t, "Gizmo", kernel.ProductKindGizmo.String())
}
