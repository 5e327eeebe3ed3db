// Package guard implementa el guard referencial: la precondición genérica
// "¿la entidad E está referenciada por alguna de sus colecciones
// dependientes?" que se evalúa antes de eliminar cualquier entidad de
// referencia compartida.
package guard

// Tipos de dependiente que puede reportar el guard.
const (
	KindWarehouse = "warehouse"
	KindItem      = "item"
	KindOrder     = "order"
	KindUser      = "user"
	KindRole      = "role"
	KindOrderLine = "order_line"
)

// Dependent un predicado de existencia sobre una colección dependiente.
type Dependent struct {
	Kind   string
	Exists func() (bool, error)
}

// Guard evalúa sus predicados en orden fijo. Sin estado y reentrante:
// entradas idénticas observan el estado persistido actual. Se evalúa siempre
// dentro de la misma transacción que la eliminación que protege.
type Guard struct {
	dependents []Dependent
}

// New construye un guard con los predicados en el orden de evaluación.
func New(dependents ...Dependent) *Guard {
	return &Guard{dependents: dependents}
}

// Check devuelve el kind del primer dependiente que bloquea (cortocircuito)
// o cadena vacía si la entidad puede eliminarse.
func (g *Guard) Check() (string, error) {
	for _, dep := range g.dependents {
		exists, err := dep.Exists()
		if err != nil {
			return "", err
		}
		if exists {
			return dep.Kind, nil
		}
	}
	return "", nil
}

// CanDelete true si y solo si ningún predicado configurado reporta dependientes.
func (g *Guard) CanDelete() (bool, error) {
	blocked, err := g.Check()
	if err != nil {
		return false, err
	}
	return blocked == "", nil
}
