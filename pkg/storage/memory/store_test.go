package memory

import (
	"testing"

	"github.com/bokol-ooch/temporizadores/pkg/storage"
	"github.com/bokol-ooch/temporizadores/pkg/storage/storagetest"
)

func TestRecordStore(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Interface {
		return NewStore()
	})
}
