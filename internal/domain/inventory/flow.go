package inventory

import (
	"github.com/jhoicas/gudang-sepatu/internal/domain"
	"github.com/jhoicas/gudang-sepatu/internal/domain/entity"
)

// Flow tabla de transiciones del flujo de producción (estado actual -> siguiente).
// Solo avanza hacia adelante, sin saltos; FINISHED_GOODS es terminal y LEATHER no participa.
type Flow struct {
	next   map[entity.Warehouse]entity.Warehouse
	stages []entity.Warehouse
}

// NewFlow construye la tabla. withFinishing activa la etapa intermedia FINISHING.
func NewFlow(withFinishing bool) Flow {
	if withFinishing {
		return Flow{
			next: map[entity.Warehouse]entity.Warehouse{
				entity.WarehouseWIP:            entity.WarehouseNearlyFinished,
				entity.WarehouseNearlyFinished: entity.WarehouseFinishing,
				entity.WarehouseFinishing:      entity.WarehouseFinishedGoods,
			},
			stages: []entity.Warehouse{
				entity.WarehouseWIP, entity.WarehouseNearlyFinished,
				entity.WarehouseFinishing, entity.WarehouseFinishedGoods,
			},
		}
	}
	return Flow{
		next: map[entity.Warehouse]entity.Warehouse{
			entity.WarehouseWIP:            entity.WarehouseNearlyFinished,
			entity.WarehouseNearlyFinished: entity.WarehouseFinishedGoods,
		},
		stages: []entity.Warehouse{
			entity.WarehouseWIP, entity.WarehouseNearlyFinished, entity.WarehouseFinishedGoods,
		},
	}
}

// Next devuelve el almacén destino de una transferencia desde from.
// ErrInvalidTransferFlow si from no tiene sucesor en la tabla.
func (f Flow) Next(from entity.Warehouse) (entity.Warehouse, error) {
	to, ok := f.next[from]
	if !ok {
		return "", domain.ErrInvalidTransferFlow
	}
	return to, nil
}

// Stages etapas de calzado activas, en orden de flujo.
func (f Flow) Stages() []entity.Warehouse {
	out := make([]entity.Warehouse, len(f.stages))
	copy(out, f.stages)
	return out
}

// HasStage indica si w es una etapa activa en este despliegue.
func (f Flow) HasStage(w entity.Warehouse) bool {
	for _, s := range f.stages {
		if s == w {
			return true
		}
	}
	return false
}
