package entity

// Warehouse identifica una etapa del flujo de producción o el almacén de cuero.
type Warehouse string

// Almacenes en orden de flujo de producción. LEATHER es material, no forma parte del flujo.
const (
	WarehouseWIP            Warehouse = "wip"
	WarehouseNearlyFinished Warehouse = "nearly_finished"
	WarehouseFinishing      Warehouse = "finishing"
	WarehouseFinishedGoods  Warehouse = "finished_goods"
	WarehouseLeather        Warehouse = "leather"
)

var warehouseNames = map[Warehouse]string{
	WarehouseWIP:            "Gudang Stok 1/2 Jadi",
	WarehouseNearlyFinished: "Gudang Stok Hampir Jadi",
	WarehouseFinishing:      "Gudang Finishing",
	WarehouseFinishedGoods:  "Gudang Stok Jadi",
	WarehouseLeather:        "Gudang Kulit",
}

// DisplayName devuelve el nombre visible del almacén (se usa en las notas de transferencia).
func (w Warehouse) DisplayName() string {
	if n, ok := warehouseNames[w]; ok {
		return n
	}
	return string(w)
}

// IsShoeStage indica si el almacén pertenece al flujo de calzado.
func (w Warehouse) IsShoeStage() bool {
	switch w {
	case WarehouseWIP, WarehouseNearlyFinished, WarehouseFinishing, WarehouseFinishedGoods:
		return true
	}
	return false
}
