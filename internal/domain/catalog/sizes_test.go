package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gudang-sepatu/internal/domain"
	"github.com/jhoicas/gudang-sepatu/internal/domain/catalog"
)

func TestParseSizes_OrdenaYDeduplica(t *testing.T) {
	sizes, err := catalog.ParseSizes(" 43, 40,41 ,40,abc,-2,0,42")
	require.NoError(t, err)
	assert.Equal(t, []int{40, 41, 42, 43}, sizes)
}

func TestParseSizes_DescartaFueraDeRangoInt32(t *testing.T) {
	sizes, err := catalog.ParseSizes("42, 4294967338, 2147483647, 2147483648")
	require.NoError(t, err)
	assert.Equal(t, []int{42, 2147483647}, sizes)

	_, err = catalog.ParseSizes("4294967338")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseSizes_SinTallasValidas(t *testing.T) {
	for _, in := range []string{"", " , ", "a,b", "0,-1"} {
		_, err := catalog.ParseSizes(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada %q", in)
	}
}

func TestNormalizeName(t *testing.T) {
	name, err := catalog.NormalizeName("name", "  Nappa ")
	require.NoError(t, err)
	assert.Equal(t, "Nappa", name)

	_, err = catalog.NormalizeName("name", "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
