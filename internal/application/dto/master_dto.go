package dto

// ShoeMasterRequest body para crear/actualizar un tipo de calzado.
// SizesStr lista separada por comas, ej. "39,40,41".
type ShoeMasterRequest struct {
	ShoeType string `json:"shoeType" validate:"required"`
	SizesStr string `json:"sizesStr" validate:"required"`
}

// NameRequest body para maestros de cuero y maklun.
type NameRequest struct {
	Name string `json:"name" validate:"required"`
}

// ShoeMasterResponse salida de un tipo de calzado.
type ShoeMasterResponse struct {
	ID       string `json:"id"`
	ShoeType string `json:"shoeType"`
	Sizes    []int  `json:"sizes"`
}

// MasterResponse salida de un maestro con nombre (cuero, maklun).
type MasterResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
