package orders_test

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos del motor de órdenes
// ──────────────────────────────────────────────────────────────────────────────

// fakeTxRunner invoca fn con los mismos fakes; los casos de uso fallan antes
// de escribir, así que no hace falta simular rollback.
type fakeTxRunner struct {
	orders   *fakeOrderRepo
	items    *fakeItemRepo
	invoices *fakeInvoiceRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	orderRepo repository.OrderRepository,
	itemRepo repository.ItemRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	return fn(r.orders, r.items, r.invoices)
}

// fakeItemRepo devuelve copias en las lecturas, como haría la BD: las
// mutaciones en memoria solo llegan al almacén vía UpdateStock/Update.
type fakeItemRepo struct {
	store map[string]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{store: make(map[string]*entity.Item)}
}

func (r *fakeItemRepo) seed(items ...*entity.Item) {
	for _, item := range items {
		copy := *item
		r.store[item.ID] = &copy
	}
}

func (r *fakeItemRepo) stockOf(id string) int64 { return r.store[id].AvailableStock }

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
	r.store[itemID].AvailableStock = availableStock
	return nil
}

func (r *fakeItemRepo) List(limit, offset int) ([]*entity.Item, error) { return nil, nil }

func (r *fakeItemRepo) ListBelowMinStock(limit, offset int) ([]*entity.Item, error) {
	return nil, nil
}

func (r *fakeItemRepo) Delete(id string) error {
	delete(r.store, id)
	return nil
}

// fakeOrderRepo cabeceras y líneas en memoria. CreateLine acumula cantidad
// sobre la línea existente del mismo (orden, item), igual que el upsert SQL.
type fakeOrderRepo struct {
	orders map[string]*entity.Order
	lines  map[string][]entity.OrderLine // por OrderID
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[string]*entity.Order),
		lines:  make(map[string][]entity.OrderLine),
	}
}

func (r *fakeOrderRepo) Create(order *entity.Order) error {
	copy := *order
	copy.Lines = nil
	r.orders[order.ID] = &copy
	return nil
}

func (r *fakeOrderRepo) CreateLine(line *entity.OrderLine) error {
	lines := r.lines[line.OrderID]
	for i := range lines {
		if lines[i].ItemID == line.ItemID {
			lines[i].Quantity += line.Quantity
			return nil
		}
	}
	r.lines[line.OrderID] = append(lines, *line)
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	copy := *order
	copy.Lines = append([]entity.OrderLine(nil), r.lines[id]...)
	return &copy, nil
}

func (r *fakeOrderRepo) GetLine(orderID, itemID string) (*entity.OrderLine, error) {
	for _, line := range r.lines[orderID] {
		if line.ItemID == itemID {
			copy := line
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) UpdateHeader(order *entity.Order) error {
	copy := *order
	copy.Lines = nil
	r.orders[order.ID] = &copy
	return nil
}

func (r *fakeOrderRepo) UpdateLine(line *entity.OrderLine) error {
	lines := r.lines[line.OrderID]
	for i := range lines {
		if lines[i].ItemID == line.ItemID {
			lines[i] = *line
			return nil
		}
	}
	return nil
}

func (r *fakeOrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	var list []*entity.Order
	for id := range r.orders {
		order, _ := r.GetByID(id)
		list = append(list, order)
	}
	return list, nil
}

func (r *fakeOrderRepo) DeleteLines(orderID string) error {
	delete(r.lines, orderID)
	return nil
}

func (r *fakeOrderRepo) Delete(id string) error {
	delete(r.orders, id)
	return nil
}

// fakeInvoiceRepo facturas por orden.
type fakeInvoiceRepo struct {
	byOrder map[string][]*entity.Invoice
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{byOrder: make(map[string][]*entity.Invoice)}
}

func (r *fakeInvoiceRepo) Create(invoice *entity.Invoice) error {
	r.byOrder[invoice.OrderID] = append(r.byOrder[invoice.OrderID], invoice)
	return nil
}

func (r *fakeInvoiceRepo) ExistsByOrder(orderID string) (bool, error) {
	return len(r.byOrder[orderID]) > 0, nil
}

func (r *fakeInvoiceRepo) ListByOrder(orderID string) ([]*entity.Invoice, error) {
	return r.byOrder[orderID], nil
}

// fakeStatusRepo catálogo de estados en memoria.
type fakeStatusRepo struct {
	store map[string]*entity.Status
}

func newFakeStatusRepo() *fakeStatusRepo {
	return &fakeStatusRepo{store: make(map[string]*entity.Status)}
}

func (r *fakeStatusRepo) Create(status *entity.Status) error {
	r.store[status.ID] = status
	return nil
}

func (r *fakeStatusRepo) GetByID(id string) (*entity.Status, error) {
	return r.store[id], nil
}

func (r *fakeStatusRepo) GetByCategoryAndLabel(category, label string) (*entity.Status, error) {
	for _, status := range r.store {
		if status.Category == category && status.Label == label {
			return status, nil
		}
	}
	return nil, nil
}

func (r *fakeStatusRepo) ListByCategory(category string, limit, offset int) ([]*entity.Status, error) {
	return nil, nil
}

func (r *fakeStatusRepo) Update(status *entity.Status) error {
	r.store[status.ID] = status
	return nil
}

func (r *fakeStatusRepo) Delete(id string) error {
	delete(r.store, id)
	return nil
}

// fakeClientRepo clientes internos en memoria.
type fakeClientRepo struct {
	store map[string]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{store: make(map[string]*entity.Client)}
}

func (r *fakeClientRepo) Create(client *entity.Client) error {
	r.store[client.ID] = client
	return nil
}

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.store[id], nil
}

func (r *fakeClientRepo) GetByEmail(email string) (*entity.Client, error) {
	for _, client := range r.store {
		if client.Email == email {
			return client, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) List(limit, offset int) ([]*entity.Client, error) { return nil, nil }

func (r *fakeClientRepo) Update(client *entity.Client) error {
	r.store[client.ID] = client
	return nil
}

func (r *fakeClientRepo) Delete(id string) error {
	delete(r.store, id)
	return nil
}
