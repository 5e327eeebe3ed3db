package usecase

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// RefTxRunner ejecuta fn dentro de una transacción con los repositorios de
// entidades de referencia atados a ella. El guard referencial y la
// eliminación que protege corren siempre en la misma transacción, de modo
// que un dependiente insertado concurrentemente no pueda colarse entre la
// comprobación y el borrado.
type RefTxRunner interface {
	RunRef(ctx context.Context, fn func(refs repository.ReferenceRepos) error) error
}
