package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishivishwa/storefront/domain/cart"
	"github.com/krishivishwa/storefront/domain/catalog"
	"github.com/krishivishwa/storefront/domain/checkout"
	"github.com/krishivishwa/storefront/domain/shared"
)

func TestCartStoreCreatesOnFirstUse(t *testing.T) {
	store := NewCartStore()

	err := store.With("sess", func(c *cart.Cart) error {
		_, err := c.Add(catalog.Product{ID: "p1", Name: "Bio Boost", Price: shared.Rupees(300)}, 2)
		return err
	})
	require.NoError(t, err)

	err = store.With("sess", func(c *cart.Cart) error {
		assert.Equal(t, 2, c.ItemCount())
		return nil
	})
	require.NoError(t, err)
}

func TestCartStoreDrop(t *testing.T) {
	store := NewCartStore()

	store.With("sess", func(c *cart.Cart) error {
		c.Add(catalog.Product{ID: "p1", Name: "Bio Boost", Price: shared.Rupees(300)}, 1)
		return nil
	})
	store.Drop("sess")

	store.With("sess", func(c *cart.Cart) error {
		assert.True(t, c.IsEmpty())
		return nil
	})
}

func TestCartStoreConcurrentSessions(t *testing.T) {
	store := NewCartStore()
	p := catalog.Product{ID: "p1", Name: "Bio Boost", Price: shared.Rupees(300)}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.With("shared", func(c *cart.Cart) error {
				_, err := c.Add(p, 1)
				return err
			})
		}()
	}
	wg.Wait()

	store.With("shared", func(c *cart.Cart) error {
		assert.Equal(t, 50, c.ItemCount())
		return nil
	})
}

func TestWizardStorePersistsAcrossCalls(t *testing.T) {
	store := NewWizardStore()

	store.With("sess", func(w *checkout.Wizard) error {
		w.SetShippingField("firstName", "Asha")
		return nil
	})

	store.With("sess", func(w *checkout.Wizard) error {
		assert.Equal(t, "Asha", w.Shipping().FirstName)
		return nil
	})

	store.Drop("sess")
	store.With("sess", func(w *checkout.Wizard) error {
		assert.Empty(t, w.Shipping().FirstName)
		assert.Equal(t, checkout.StepReview, w.Step())
		return nil
	})
}

func TestLikeStore(t *testing.T) {
	store := NewLikeStore()

	assert.True(t, store.Like("client", "n1"))
	assert.False(t, store.Like("client", "n1"), "second like must report unchanged")
	assert.Equal(t, []string{"n1"}, store.Liked("client"))

	assert.True(t, store.Unlike("client", "n1"))
	assert.False(t, store.Unlike("client", "n1"))
	assert.Empty(t, store.Liked("client"))

	// Clients are independent.
	store.Like("other", "n1")
	assert.Empty(t, store.Liked("client"))
}
