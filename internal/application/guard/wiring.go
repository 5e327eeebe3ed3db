package guard

import "github.com/jhoicas/almacen-api/internal/domain/repository"

// Cableado por tipo de entidad. El orden de los predicados es fijo y es el
// orden en que el guard cortocircuita.

// ForStatus dependientes de un estado: bodegas, items, órdenes, usuarios.
func ForStatus(deps repository.DependencyRepository, statusID string) *Guard {
	return New(
		Dependent{Kind: KindWarehouse, Exists: func() (bool, error) { return deps.ExistsWarehouseByStatus(statusID) }},
		Dependent{Kind: KindItem, Exists: func() (bool, error) { return deps.ExistsItemByStatus(statusID) }},
		Dependent{Kind: KindOrder, Exists: func() (bool, error) { return deps.ExistsOrderByStatus(statusID) }},
		Dependent{Kind: KindUser, Exists: func() (bool, error) { return deps.ExistsUserByStatus(statusID) }},
	)
}

// ForCategory dependientes de una categoría: items.
func ForCategory(deps repository.DependencyRepository, categoryID string) *Guard {
	return New(
		Dependent{Kind: KindItem, Exists: func() (bool, error) { return deps.ExistsItemByCategory(categoryID) }},
	)
}

// ForWarehouse dependientes de una bodega: items.
func ForWarehouse(deps repository.DependencyRepository, warehouseID string) *Guard {
	return New(
		Dependent{Kind: KindItem, Exists: func() (bool, error) { return deps.ExistsItemByWarehouse(warehouseID) }},
	)
}

// ForSupplier dependientes de un proveedor: items.
func ForSupplier(deps repository.DependencyRepository, supplierID string) *Guard {
	return New(
		Dependent{Kind: KindItem, Exists: func() (bool, error) { return deps.ExistsItemBySupplier(supplierID) }},
	)
}

// ForClient dependientes de un cliente interno: órdenes.
func ForClient(deps repository.DependencyRepository, clientID string) *Guard {
	return New(
		Dependent{Kind: KindOrder, Exists: func() (bool, error) { return deps.ExistsOrderByClient(clientID) }},
	)
}

// ForPermission dependientes de un permiso: roles que lo tienen asignado.
func ForPermission(deps repository.DependencyRepository, permissionID string) *Guard {
	return New(
		Dependent{Kind: KindRole, Exists: func() (bool, error) { return deps.ExistsRoleByPermission(permissionID) }},
	)
}

// ForRole dependientes de un rol: usuarios que lo tienen asignado.
func ForRole(deps repository.DependencyRepository, roleID string) *Guard {
	return New(
		Dependent{Kind: KindUser, Exists: func() (bool, error) { return deps.ExistsUserByRole(roleID) }},
	)
}

// ForItem dependientes de un item: líneas de órdenes no terminales.
func ForItem(deps repository.DependencyRepository, itemID string) *Guard {
	return New(
		Dependent{Kind: KindOrderLine, Exists: func() (bool, error) { return deps.ExistsActiveOrderLineByItem(itemID) }},
	)
}
