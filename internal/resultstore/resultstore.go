// Package resultstore persists analysis runs and their outcomes.
package resultstore

import (
	"fmt"
	"sync"

	"github.com/coursepulse/coursepulse/internal/contract"
	"github.com/coursepulse/coursepulse/schema"
)

// ResultStoreManager holds the process-wide ResultStore instance.
type ResultStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	results      contract.ResultStore
}

var _ contract.StoreManager = &ResultStoreManager{} // Compile-time check

// GetResultStore returns the ResultStore.
func (mgr *ResultStoreManager) GetResultStore() contract.ResultStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.results
}

// SetResultStore swaps in a store. Tests use this to install mocks.
func (mgr *ResultStoreManager) SetResultStore(store contract.ResultStore) {
	mgr.Lock()
	defer mgr.Unlock()
	mgr.results = store
}

// quoteTableName quotes a table name per backend conventions.
func quoteTableName(name string, backend schema.StoreBackend) string {
	switch backend {
	case schema.PostgreSQLBackend:
		return fmt.Sprintf("\"%s\"", name)
	case schema.MySQLBackend:
		return fmt.Sprintf("`%s`", name)
	default: // SQLite
		return fmt.Sprintf("\"%s\"", name)
	}
}
