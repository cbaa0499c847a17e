package catalog

import (
	"slices"
	"strconv"
	"strings"

	"github.com/jhoicas/gudang-sepatu/internal/domain"
)

// ParseSizes convierte "40, 41,42,41" en [40 41 42]: descarta lo que no sea entero positivo
// de 32 bits (columna INT[]), elimina duplicados y ordena ascendente. Error si no queda ninguna talla.
func ParseSizes(sizesStr string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(sizesStr, ",") {
		n, err := strconv.ParseInt(strings.TrimSpace(part), 10, 32)
		if err != nil || n <= 0 {
			continue
		}
		sizes = append(sizes, int(n))
	}
	slices.Sort(sizes)
	sizes = slices.Compact(sizes)
	if len(sizes) == 0 {
		return nil, domain.Invalid("sizesStr", "harap masukkan setidaknya satu nomor ukuran yang valid")
	}
	return sizes, nil
}

// NormalizeName recorta espacios; error si queda vacío.
func NormalizeName(field, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.Invalid(field, field+" tidak boleh kosong")
	}
	return name, nil
}
