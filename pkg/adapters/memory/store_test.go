package memory_test

import (
	"testing"

	"github.com/aretw0/bough/pkg/adapters/memory"
	contract "github.com/aretw0/bough/pkg/ports/tests"
)

func TestMemoryStore_Contract(t *testing.T) {
	contract.TraceStoreContract(t, memory.New())
}
