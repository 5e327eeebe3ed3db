package usecase_test

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de las entidades de referencia
// ──────────────────────────────────────────────────────────────────────────────

// fakeRefRunner entrega los mismos fakes en cada llamada; los casos de uso
// fallan antes de mutar, así que no hace falta simular rollback.
type fakeRefRunner struct {
	refs repository.ReferenceRepos
}

func (r *fakeRefRunner) RunRef(_ context.Context, fn func(refs repository.ReferenceRepos) error) error {
	return fn(r.refs)
}

type fakeStatusRepo struct {
	store map[string]*entity.Status
}

func newFakeStatusRepo() *fakeStatusRepo {
	return &fakeStatusRepo{store: make(map[string]*entity.Status)}
}

func (r *fakeStatusRepo) Create(status *entity.Status) error {
	copy := *status
	r.store[status.ID] = &copy
	return nil
}

func (r *fakeStatusRepo) GetByID(id string) (*entity.Status, error) {
	status, ok := r.store[id]
	if !ok {
		return nil, nil
	}
	copy := *status
	return &copy, nil
}

func (r *fakeStatusRepo) GetByCategoryAndLabel(category, label string) (*entity.Status, error) {
	for _, status := range r.store {
		if status.Category == category && status.Label == label {
			copy := *status
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakeStatusRepo) ListByCategory(category string, _, _ int) ([]*entity.Status, error) {
	var out []*entity.Status
	for _, status := range r.store {
		if status.Category == category {
			copy := *status
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (r *fakeStatusRepo) Update(status *entity.Status) error {
	copy := *status
	r.store[status.ID] = &copy
	return nil
}

func (r *fakeStatusRepo) Delete(id string) error {
	delete(r.store, id)
	return nil
}

type fakeRoleRepo struct {
	roles  map[string]*entity.Role
	grants map[string]map[string]bool
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{
		roles:  make(map[string]*entity.Role),
		grants: make(map[string]map[string]bool),
	}
}

func (r *fakeRoleRepo) Create(role *entity.Role) error {
	copy := *role
	r.roles[role.ID] = &copy
	return nil
}

func (r *fakeRoleRepo) GetByID(id string) (*entity.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, nil
	}
	copy := *role
	return &copy, nil
}

func (r *fakeRoleRepo) GetByName(name string) (*entity.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			copy := *role
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakeRoleRepo) List(_, _ int) ([]*entity.Role, error) {
	var out []*entity.Role
	for _, role := range r.roles {
		copy := *role
		out = append(out, &copy)
	}
	return out, nil
}

func (r *fakeRoleRepo) Delete(id string) error {
	delete(r.roles, id)
	delete(r.grants, id)
	return nil
}

func (r *fakeRoleRepo) ListPermissions(roleID string) ([]*entity.Permission, error) {
	var out []*entity.Permission
	for pid := range r.grants[roleID] {
		out = append(out, &entity.Permission{ID: pid})
	}
	return out, nil
}

func (r *fakeRoleRepo) GrantExists(roleID, permissionID string) (bool, error) {
	return r.grants[roleID][permissionID], nil
}

func (r *fakeRoleRepo) Grant(roleID, permissionID string) error {
	if r.grants[roleID] == nil {
		r.grants[roleID] = make(map[string]bool)
	}
	r.grants[roleID][permissionID] = true
	return nil
}

func (r *fakeRoleRepo) Revoke(roleID, permissionID string) error {
	delete(r.grants[roleID], permissionID)
	return nil
}

func (r *fakeRoleRepo) ClearPermissions(roleID string) error {
	delete(r.grants, roleID)
	return nil
}

// grantSet copia el conjunto de permisos del rol, para afirmar sobre él.
func (r *fakeRoleRepo) grantSet(roleID string) map[string]bool {
	out := make(map[string]bool, len(r.grants[roleID]))
	for pid := range r.grants[roleID] {
		out[pid] = true
	}
	return out
}

type fakePermRepo struct {
	store map[string]*entity.Permission
}

func newFakePermRepo() *fakePermRepo {
	return &fakePermRepo{store: make(map[string]*entity.Permission)}
}

func (r *fakePermRepo) Create(perm *entity.Permission) error {
	copy := *perm
	r.store[perm.ID] = &copy
	return nil
}

func (r *fakePermRepo) GetByID(id string) (*entity.Permission, error) {
	perm, ok := r.store[id]
	if !ok {
		return nil, nil
	}
	copy := *perm
	return &copy, nil
}

func (r *fakePermRepo) GetByName(name string) (*entity.Permission, error) {
	for _, perm := range r.store {
		if perm.Name == name {
			copy := *perm
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakePermRepo) List(_, _ int) ([]*entity.Permission, error) {
	var out []*entity.Permission
	for _, perm := range r.store {
		copy := *perm
		out = append(out, &copy)
	}
	return out, nil
}

func (r *fakePermRepo) Delete(id string) error {
	delete(r.store, id)
	return nil
}

type fakeItemRepo struct {
	store map[string]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{store: make(map[string]*entity.Item)}
}

func (r *fakeItemRepo) Create(item *entity.Item) error {
	copy := *item
	r.store[item.ID] = &copy
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	item, ok := r.store[id]
	if !ok {
		return nil, nil
	}
	copy := *item
	return &copy, nil
}

func (r *fakeItemRepo) GetByIDForUpdate(id string) (*entity.Item, error) {
	return r.GetByID(id)
}

func (r *fakeItemRepo) GetByCode(code string) (*entity.Item, error) {
	for _, item := range r.store {
		if item.Code == code {
			copy := *item
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) Update(item *entity.Item) error {
	copy := *item
	r.store[item.ID] = &copy
	return nil
}

func (r *fakeItemRepo) UpdateStock(itemID string, availableStock int64) error {
	if item, ok := r.store[itemID]; ok {
		item.AvailableStock = availableStock
	}
	return nil
}

func (r *fakeItemRepo) List(_, _ int) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, item := range r.store {
		copy := *item
		out = append(out, &copy)
	}
	return out, nil
}

func (r *fakeItemRepo) ListBelowMinStock(_, _ int) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, item := range r.store {
		if item.BelowMinStock() {
			copy := *item
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) Delete(id string) error {
	delete(r.store, id)
	return nil
}

type fakeSupplierRepo struct {
	store map[string]*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{store: make(map[string]*entity.Supplier)}
}

func (r *fakeSupplierRepo) Create(supplier *entity.Supplier) error {
	copy := *supplier
	r.store[supplier.ID] = &copy
	return nil
}

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	supplier, ok := r.store[id]
	if !ok {
		return nil, nil
	}
	copy := *supplier
	return &copy, nil
}

func (r *fakeSupplierRepo) GetByNIT(nit string) (*entity.Supplier, error) {
	for _, supplier := range r.store {
		if supplier.NIT == nit {
			copy := *supplier
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakeSupplierRepo) List(_, _ int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, supplier := range r.store {
		copy := *supplier
		out = append(out, &copy)
	}
	return out, nil
}

func (r *fakeSupplierRepo) Update(supplier *entity.Supplier) error {
	copy := *supplier
	r.store[supplier.ID] = &copy
	return nil
}

func (r *fakeSupplierRepo) Delete(id string) error {
	delete(r.store, id)
	return nil
}

type fakeCategoryRepo struct {
	store map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{store: make(map[string]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(category *entity.Category) error {
	copy := *category
	r.store[category.ID] = &copy
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	category, ok := r.store[id]
	if !ok {
		return nil, nil
	}
	copy := *category
	return &copy, nil
}

func (r *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, category := range r.store {
		if category.Name == name {
			copy := *category
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) List(_, _ int) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, category := range r.store {
		copy := *category
		out = append(out, &copy)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(category *entity.Category) error {
	copy := *category
	r.store[category.ID] = &copy
	return nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	delete(r.store, id)
	return nil
}

type fakeWarehouseRepo struct {
	store map[string]*entity.Warehouse
}

func newFakeWarehouseRepo() *fakeWarehouseRepo {
	return &fakeWarehouseRepo{store: make(map[string]*entity.Warehouse)}
}

func (r *fakeWarehouseRepo) Create(warehouse *entity.Warehouse) error {
	copy := *warehouse
	r.store[warehouse.ID] = &copy
	return nil
}

func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	warehouse, ok := r.store[id]
	if !ok {
		return nil, nil
	}
	copy := *warehouse
	return &copy, nil
}

func (r *fakeWarehouseRepo) GetByName(name string) (*entity.Warehouse, error) {
	for _, warehouse := range r.store {
		if warehouse.Name == name {
			copy := *warehouse
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakeWarehouseRepo) List(_, _ int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, warehouse := range r.store {
		copy := *warehouse
		out = append(out, &copy)
	}
	return out, nil
}

func (r *fakeWarehouseRepo) Update(warehouse *entity.Warehouse) error {
	copy := *warehouse
	r.store[warehouse.ID] = &copy
	return nil
}

func (r *fakeWarehouseRepo) Delete(id string) error {
	delete(r.store, id)
	return nil
}

// fakeDeps predicados de existencia configurables por mapa. La clave es el ID
// de la entidad a borrar; el valor indica si el dependiente existe.
type fakeDeps struct {
	warehouseByStatus map[string]bool
	itemByStatus      map[string]bool
	orderByStatus     map[string]bool
	userByStatus      map[string]bool
	itemByCategory    map[string]bool
	itemByWarehouse   map[string]bool
	itemBySupplier    map[string]bool
	orderByClient     map[string]bool
	userByRole        map[string]bool
	roleByPermission  map[string]bool
	activeLineByItem  map[string]bool
}

func newFakeDeps() *fakeDeps {
	return &fakeDeps{
		warehouseByStatus: make(map[string]bool),
		itemByStatus:      make(map[string]bool),
		orderByStatus:     make(map[string]bool),
		userByStatus:      make(map[string]bool),
		itemByCategory:    make(map[string]bool),
		itemByWarehouse:   make(map[string]bool),
		itemBySupplier:    make(map[string]bool),
		orderByClient:     make(map[string]bool),
		userByRole:        make(map[string]bool),
		roleByPermission:  make(map[string]bool),
		activeLineByItem:  make(map[string]bool),
	}
}

func (d *fakeDeps) ExistsWarehouseByStatus(id string) (bool, error) { return d.warehouseByStatus[id], nil }
func (d *fakeDeps) ExistsItemByStatus(id string) (bool, error)      { return d.itemByStatus[id], nil }
func (d *fakeDeps) ExistsOrderByStatus(id string) (bool, error)     { return d.orderByStatus[id], nil }
func (d *fakeDeps) ExistsUserByStatus(id string) (bool, error)      { return d.userByStatus[id], nil }
func (d *fakeDeps) ExistsItemByCategory(id string) (bool, error)    { return d.itemByCategory[id], nil }
func (d *fakeDeps) ExistsItemByWarehouse(id string) (bool, error)   { return d.itemByWarehouse[id], nil }
func (d *fakeDeps) ExistsItemBySupplier(id string) (bool, error)    { return d.itemBySupplier[id], nil }
func (d *fakeDeps) ExistsOrderByClient(id string) (bool, error)     { return d.orderByClient[id], nil }
func (d *fakeDeps) ExistsUserByRole(id string) (bool, error)        { return d.userByRole[id], nil }
func (d *fakeDeps) ExistsRoleByPermission(id string) (bool, error)  { return d.roleByPermission[id], nil }
func (d *fakeDeps) ExistsActiveOrderLineByItem(id string) (bool, error) {
	return d.activeLineByItem[id], nil
}
