package repository

// DependencyRepository agrupa los predicados de existencia sobre colecciones
// dependientes que alimentan el guard referencial. Cada consulta observa el
// estado persistido actual; no hay caché entre llamadas.
type DependencyRepository interface {
	// Dependientes de Status, en el orden documentado del guard.
	ExistsWarehouseByStatus(statusID string) (bool, error)
	ExistsItemByStatus(statusID string) (bool, error)
	ExistsOrderByStatus(statusID string) (bool, error)
	ExistsUserByStatus(statusID string) (bool, error)

	// Dependientes de las demás entidades de referencia.
	ExistsItemByCategory(categoryID string) (bool, error)
	ExistsItemByWarehouse(warehouseID string) (bool, error)
	ExistsItemBySupplier(supplierID string) (bool, error)
	ExistsOrderByClient(clientID string) (bool, error)
	ExistsUserByRole(roleID string) (bool, error)
	ExistsRoleByPermission(permissionID string) (bool, error)

	// ExistsActiveOrderLineByItem: el item aparece en alguna línea de una
	// orden no terminal (closed_at IS NULL).
	ExistsActiveOrderLineByItem(itemID string) (bool, error)
}

// ReferenceRepos agrupa los repositorios atados a una misma transacción para
// las eliminaciones con guard y el reemplazo del conjunto de permisos.
type ReferenceRepos struct {
	Status     StatusRepository
	Category   CategoryRepository
	Warehouse  WarehouseRepository
	Supplier   SupplierRepository
	Client     ClientRepository
	Item       ItemRepository
	Role       RoleRepository
	Permission PermissionRepository
	Deps       DependencyRepository
}
