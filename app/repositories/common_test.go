package repositories

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNextID(t *testing.T) {
	db, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	for want := 1; want <= 3; want++ {
		err := db.Update(func(txn *badger.Txn) error {
			id, err := getNextID(txn, PostSeqKey)
			if err != nil {
				return err
			}
			assert.Equal(t, want, id)
			return nil
		})
		require.NoError(t, err)
	}

	// Sequences are independent per entity type.
	err = db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, CommentSeqKey)
		if err != nil {
			return err
		}
		assert.Equal(t, 1, id)
		return nil
	})
	require.NoError(t, err)
}

func TestIDEncoding(t *testing.T) {
	for _, id := range []int{0, 1, 255, 256, 1 << 20} {
		assert.Equal(t, id, btoi(itob(id)))
	}
}
